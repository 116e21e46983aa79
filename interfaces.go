package imagenedit

import "context"

// ImageEditor is the core interface for Imagen-style image models.
// Implement this interface to add support for new backends, or to swap
// in a mock for tests.
//
// The first model returned by Models() is considered the default model.
type ImageEditor interface {
	// Generate creates images from a text prompt.
	Generate(ctx context.Context, prompt string, cfg *EditConfig) (*EditResult, error)

	// Edit applies a mask-free edit to a base image: the prompt is applied
	// to the whole image rather than a masked region.
	Edit(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error)

	// Upscale increases the resolution of an image by the given factor.
	Upscale(ctx context.Context, image InputImage, factor UpscaleFactor, cfg *EditConfig) (*EditResult, error)

	// Models returns the model definitions supported by this editor.
	// The first model in the list is the default.
	Models() []ModelInfo

	// Close releases any resources held by the editor.
	Close() error
}
