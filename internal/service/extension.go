package service

import (
	"path/filepath"
	"strings"
)

// FallbackExtension is used when neither the content type nor the file name
// identify a supported image format.
const FallbackExtension = ".img"

var extensionsByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var knownExtensions = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".webp": ".webp",
}

// ResolveExtension picks the extension, with leading dot, for the stored copy
// of an upload. The declared content type wins, then the suffix of the
// original name, then FallbackExtension. An empty contentType means none was
// declared.
func ResolveExtension(contentType, originalName string) string {
	if ext, ok := extensionsByContentType[contentType]; ok {
		return ext
	}
	if ext, ok := knownExtensions[strings.ToLower(filepath.Ext(originalName))]; ok {
		return ext
	}
	return FallbackExtension
}
