package imagenedit

import (
	"fmt"
	"os"
)

// GeneratedImage represents a single generated image result.
type GeneratedImage struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the generated image
	MIMEType string

	// Index is the position in a multi-image result (0-indexed)
	Index int

	// EnhancedPrompt is the prompt after any service-side rewriting
	EnhancedPrompt string

	// FilteredReason is set when the service withheld the image for
	// responsible-AI reasons; Data is empty in that case.
	FilteredReason string
}

// Size returns the byte length of the image data.
func (img GeneratedImage) Size() int {
	return len(img.Data)
}

// Save writes the image bytes to a local file.
func (img GeneratedImage) Save(path string) error {
	if len(img.Data) == 0 {
		return fmt.Errorf("saving %s: %w", path, ErrNoImageData)
	}
	if err := os.WriteFile(path, img.Data, 0644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EditResult holds the complete result of a generation, edit, or upscale
// request.
type EditResult struct {
	// Images contains all returned images
	Images []GeneratedImage
}

// First returns the first image in the result, and whether one exists.
func (r *EditResult) First() (GeneratedImage, bool) {
	if r == nil || len(r.Images) == 0 {
		return GeneratedImage{}, false
	}
	return r.Images[0], true
}

// TotalBytes returns the combined byte length of all images in the result.
func (r *EditResult) TotalBytes() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, img := range r.Images {
		total += len(img.Data)
	}
	return total
}
