package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeImageFilename(t *testing.T) {
	name, err := SanitizeImageFilename("portrait.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "portrait.jpg", name)

	name, err = SanitizeImageFilename("../../etc/passwd.png")
	assert.NoError(t, err)
	assert.Equal(t, "passwd.png", name)

	name, err = SanitizeImageFilename("my photo (1).jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "my_photo__1_.jpeg", name)

	_, err = SanitizeImageFilename("notes.pdf")
	assert.Error(t, err, "non-image extension")

	_, err = SanitizeImageFilename("")
	assert.Error(t, err)
}
