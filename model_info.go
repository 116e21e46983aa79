package imagenedit

// ModelCapabilities describes what operations a model supports.
type ModelCapabilities struct {
	SupportsTextToImage  bool
	SupportsImageEditing bool
	SupportsUpscaling    bool

	// MaxOutputImages is the maximum images returned per request.
	MaxOutputImages int
}

// RateLimits defines rate limiting parameters for a model. Imagen quotas
// are per-request, not per-token.
type RateLimits struct {
	RequestsPerMinute int
}

// Pricing defines cost information for a model.
type Pricing struct {
	// PerImage is the cost in USD for each generated or edited image.
	PerImage float64
}

// ImageConstraints defines supported image configurations for a model.
type ImageConstraints struct {
	SupportedAspectRatios   []AspectRatio
	SupportedUpscaleFactors []UpscaleFactor
}

// ModelInfo contains complete metadata for a model.
type ModelInfo struct {
	// Identity
	Name         string   // Public model name (e.g., "imagen-2")
	Provider     Provider // Which backend serves this model
	APIModelName string   // Actual API name (e.g., "imagegeneration@002")

	Capabilities ModelCapabilities

	ImageConstraints ImageConstraints

	RateLimits RateLimits

	Pricing Pricing
}
