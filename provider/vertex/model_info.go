package vertex

import "github.com/mhpenta/imagenedit"

// Imagen2Info is the model info for Imagen 2 (imagegeneration@002), the
// default model. It accepts both generation and mask-free edit requests.
var Imagen2Info = imagenedit.ModelInfo{
	Name:         "imagen-2",
	Provider:     imagenedit.ProviderVertexAI,
	APIModelName: APIModelImagen2,

	Capabilities: imagenedit.ModelCapabilities{
		SupportsTextToImage:  true,
		SupportsImageEditing: true,
		SupportsUpscaling:    false,
		MaxOutputImages:      8,
	},

	ImageConstraints: imagenedit.ImageConstraints{
		SupportedAspectRatios: []imagenedit.AspectRatio{
			imagenedit.AspectRatio1x1,
			imagenedit.AspectRatio16x9,
			imagenedit.AspectRatio9x16,
			imagenedit.AspectRatio4x3,
			imagenedit.AspectRatio3x4,
		},
	},

	RateLimits: imagenedit.RateLimits{
		RequestsPerMinute: 100, // Default per-project Vertex quota
	},

	Pricing: imagenedit.Pricing{
		PerImage: 0.020,
	},
}

// Imagen3Info is the Imagen 3 text-to-image model. Upscaling on Vertex is
// served through this model.
var Imagen3Info = imagenedit.ModelInfo{
	Name:         "imagen-3",
	Provider:     imagenedit.ProviderVertexAI,
	APIModelName: APIModelImagen3,

	Capabilities: imagenedit.ModelCapabilities{
		SupportsTextToImage:  true,
		SupportsImageEditing: false,
		SupportsUpscaling:    true,
		MaxOutputImages:      4,
	},

	ImageConstraints: imagenedit.ImageConstraints{
		SupportedAspectRatios: []imagenedit.AspectRatio{
			imagenedit.AspectRatio1x1,
			imagenedit.AspectRatio16x9,
			imagenedit.AspectRatio9x16,
			imagenedit.AspectRatio4x3,
			imagenedit.AspectRatio3x4,
		},
		SupportedUpscaleFactors: []imagenedit.UpscaleFactor{
			imagenedit.UpscaleX2,
			imagenedit.UpscaleX4,
		},
	},

	RateLimits: imagenedit.RateLimits{
		RequestsPerMinute: 200,
	},

	Pricing: imagenedit.Pricing{
		PerImage: 0.040,
	},
}

// Imagen3CapabilityInfo is the Imagen 3 editing model.
var Imagen3CapabilityInfo = imagenedit.ModelInfo{
	Name:         "imagen-3-capability",
	Provider:     imagenedit.ProviderVertexAI,
	APIModelName: APIModelImagen3Capability,

	Capabilities: imagenedit.ModelCapabilities{
		SupportsTextToImage:  false,
		SupportsImageEditing: true,
		SupportsUpscaling:    false,
		MaxOutputImages:      4,
	},

	ImageConstraints: imagenedit.ImageConstraints{
		SupportedAspectRatios: []imagenedit.AspectRatio{
			imagenedit.AspectRatio1x1,
			imagenedit.AspectRatio16x9,
			imagenedit.AspectRatio9x16,
			imagenedit.AspectRatio4x3,
			imagenedit.AspectRatio3x4,
		},
	},

	RateLimits: imagenedit.RateLimits{
		RequestsPerMinute: 100,
	},

	Pricing: imagenedit.Pricing{
		PerImage: 0.040,
	},
}
