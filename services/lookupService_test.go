package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeOptionsUnionsAndSorts(t *testing.T) {
	base := []string{"Tab Fexofenadine 120mg", "Calamine Lotion"}
	custom := []string{"Tab Acyclovir 400mg"}

	merged := MergeOptions(base, custom)

	assert.Equal(t, []string{"Calamine Lotion", "Tab Acyclovir 400mg", "Tab Fexofenadine 120mg"}, merged)
}

func TestMergeOptionsDeduplicatesCaseInsensitively(t *testing.T) {
	base := []string{"Calamine Lotion"}
	custom := []string{"calamine lotion", "CALAMINE LOTION "}

	merged := MergeOptions(base, custom)

	// The base list's spelling wins.
	assert.Equal(t, []string{"Calamine Lotion"}, merged)
}

func TestMergeOptionsSkipsBlanks(t *testing.T) {
	merged := MergeOptions([]string{"", "  "}, []string{"5 ml"})
	assert.Equal(t, []string{"5 ml"}, merged)
}

func TestAddOptionRejectsBlankValue(t *testing.T) {
	service := NewLookupService(nil)
	_, err := service.AddOption(context.Background(), "quantity", "   ")
	assert.True(t, errors.Is(err, ErrEmptyLookupValue))
}
