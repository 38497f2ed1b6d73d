package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeImageFilename strips path components and unsafe characters from an
// uploaded filename and verifies the extension is an accepted image type.
func SanitizeImageFilename(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == ".." {
		return "", fmt.Errorf("invalid filename")
	}

	clean := unsafeFilenameChars.ReplaceAllString(base, "_")
	ext := strings.ToLower(filepath.Ext(clean))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("invalid file type: %s", ext)
	}
	return clean, nil
}
