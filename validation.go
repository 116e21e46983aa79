package imagenedit

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrEmptyPrompt          = errors.New("prompt cannot be empty")
	ErrEmptyImageData       = errors.New("image data cannot be empty")
	ErrInvalidMIMEType      = errors.New("invalid or unsupported MIME type")
	ErrImageTooLarge        = errors.New("image data exceeds maximum size")
	ErrInvalidUpscaleFactor = errors.New("invalid upscale factor")
)

// MaxImageSize is the maximum allowed input image size in bytes (10MB,
// the Imagen request payload limit).
const MaxImageSize = 10 * 1024 * 1024

// ValidMIMETypes contains the supported input image MIME types.
var ValidMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidatePrompt validates a text prompt.
func ValidatePrompt(prompt string) error {
	if prompt == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateInputImage validates an input image.
func ValidateInputImage(img InputImage) error {
	if len(img.Data) == 0 && img.URI == "" {
		return ErrEmptyImageData
	}

	if len(img.Data) > 0 {
		if len(img.Data) > MaxImageSize {
			return fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(img.Data), MaxImageSize)
		}

		if img.MIMEType == "" {
			return fmt.Errorf("%w: MIME type is required", ErrInvalidMIMEType)
		}

		if !ValidMIMETypes[img.MIMEType] {
			return fmt.Errorf("%w: %s", ErrInvalidMIMEType, img.MIMEType)
		}
	}

	return nil
}

// ValidateUpscaleFactor validates an upscale factor.
func ValidateUpscaleFactor(factor UpscaleFactor) error {
	switch factor {
	case UpscaleX2, UpscaleX4:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUpscaleFactor, factor)
	}
}
