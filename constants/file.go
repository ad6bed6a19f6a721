package constants

import "strings"

// FileFormats holds the allowed file types for uploaded invoice documents.
var FileFormats = []string{"PDF", "IMAGE"}

// AllowedExtensions holds the default allowed file extensions for invoice uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// AllowedContentTypes maps permitted upload content types to a coarse format.
var AllowedContentTypes = map[string]string{
	"application/pdf": "PDF",
	"image/jpeg":      "IMAGE",
	"image/png":       "IMAGE",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the coarse format for a file extension, or "" if not allowed.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "jpg", "jpeg", "png":
		return "IMAGE"
	default:
		return ""
	}
}
