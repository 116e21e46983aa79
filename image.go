package imagenedit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadImageFile reads a local image file (PNG or JPEG) into an InputImage.
// The MIME type is inferred from the file extension.
func LoadImageFile(path string) (InputImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputImage{}, fmt.Errorf("reading input image %s: %w", path, err)
	}
	return InputImage{
		Data:     data,
		MIMEType: MIMETypeFromPath(path),
	}, nil
}

// MIMETypeFromPath infers an image MIME type from a file path's extension.
// Unknown extensions default to PNG.
func MIMETypeFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// ExtensionFromMIME returns a file extension for common image MIME types.
func ExtensionFromMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}
