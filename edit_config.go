package imagenedit

import (
	"time"
)

// Model represents a specific image model.
type Model string

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatioAuto AspectRatio = ""
)

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

// UpscaleFactor represents the resolution multiplier for upscaling.
type UpscaleFactor string

const (
	UpscaleX2 UpscaleFactor = "x2"
	UpscaleX4 UpscaleFactor = "x4"
)

// String returns the string representation for API calls.
func (f UpscaleFactor) String() string {
	return string(f)
}

// Fixed parameters used for mask-free editing. Guidance scale controls
// prompt adherence: 0-9 low, 10-20 medium, 21+ high.
const (
	MaskFreeSeed          int32   = 1
	MaskFreeGuidanceScale float32 = 21
	MaskFreeImageCount    int     = 1
)

// EditConfig holds configuration options for generation, editing, and
// upscaling requests.
type EditConfig struct {
	// Model to use (if empty, uses manager's default)
	Model Model

	// Seed fixes the pseudo-random generation process for reproducibility.
	// Nil lets the service choose.
	Seed *int32

	// GuidanceScale controls how strongly the model adheres to the prompt.
	// Nil uses the service default.
	GuidanceScale *float32

	// NumberOfImages to generate (1-4 typically)
	NumberOfImages int

	// NegativePrompt describes what to avoid in the output
	NegativePrompt string

	// AspectRatio of the output image
	AspectRatio AspectRatio

	// OutputMIMEType of the generated images (e.g., "image/png")
	OutputMIMEType string

	// Metadata to attach to requests (for logging/tracking)
	Metadata map[string]string

	// WaitOnRateLimit, if true, causes the Manager to wait and retry when
	// rate limited. If false, a RateLimitError is returned immediately.
	WaitOnRateLimit bool

	// MaxWaitDuration is the maximum time to wait when WaitOnRateLimit is true.
	// Zero means no limit.
	MaxWaitDuration time.Duration
}

// WithModel returns a copy of the config with the specified model.
func (c *EditConfig) WithModel(model Model) *EditConfig {
	if c == nil {
		return &EditConfig{Model: model}
	}
	cX := *c
	cX.Model = model
	return &cX
}

// DefaultConfig returns an EditConfig with sensible defaults.
func DefaultConfig() *EditConfig {
	return &EditConfig{
		Model:          ModelDefault,
		NumberOfImages: 1,
		AspectRatio:    AspectRatioAuto,
	}
}

// MaskFreeEditConfig returns the fixed parameter set used by EditRunner:
// a deterministic seed, high-end guidance scale, and exactly one output
// image.
func MaskFreeEditConfig() *EditConfig {
	seed := MaskFreeSeed
	guidance := MaskFreeGuidanceScale
	return &EditConfig{
		Model:          ModelDefault,
		Seed:           &seed,
		GuidanceScale:  &guidance,
		NumberOfImages: MaskFreeImageCount,
	}
}

// InputImage represents an image input for editing and upscaling.
type InputImage struct {
	// Data is the raw image bytes
	Data []byte

	// MIMEType of the image (e.g., "image/jpeg", "image/png")
	MIMEType string

	// URI is an optional URI reference (for cloud-stored images)
	URI string
}
