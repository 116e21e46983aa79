// Package vertex provides an ImageEditor implementation backed by the
// Imagen models on Google Cloud Vertex AI.
//
// The backend is consumed via the official Go SDK:
// https://github.com/googleapis/go-genai
//
// Credentials are discovered through Application Default Credentials; the
// client is bound to a project and region at construction time.
package vertex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhpenta/imagenedit"
	"google.golang.org/genai"
)

// Model name constants - the actual API model names.
const (
	// APIModelImagen2 is Imagen 2, which handles both text-to-image and
	// mask-free editing on Vertex AI.
	APIModelImagen2 = "imagegeneration@002"

	// APIModelImagen3 is the Imagen 3 text-to-image model.
	APIModelImagen3 = "imagen-3.0-generate-002"

	// APIModelImagen3Capability is the Imagen 3 editing model.
	APIModelImagen3Capability = "imagen-3.0-capability-001"
)

// Config configures the Vertex AI backend.
type Config struct {
	// ProjectID is the Google Cloud project to bill and authorize against.
	ProjectID string

	// Location is the Vertex AI region (e.g., "us-central1").
	Location string
}

// VertexEditor implements ImageEditor using Imagen on Vertex AI.
type VertexEditor struct {
	client *genai.Client
}

// Ensure VertexEditor implements the interface.
var _ imagenedit.ImageEditor = (*VertexEditor)(nil)

// New creates a VertexEditor bound to the given project and location.
// Authentication uses ambient Application Default Credentials.
func New(ctx context.Context, cfg Config) (*VertexEditor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.ProjectID,
		Location: cfg.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	return &VertexEditor{
		client: client,
	}, nil
}

// Generate creates images from a text prompt.
func (v *VertexEditor) Generate(ctx context.Context, prompt string, cfg *imagenedit.EditConfig) (*imagenedit.EditResult, error) {
	if err := imagenedit.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = imagenedit.DefaultConfig()
	}

	modelName := v.resolveModel(cfg)

	result, err := v.client.Models.GenerateImages(ctx, modelName, prompt, buildGenerateImagesConfig(cfg))
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return convertImages(result.GeneratedImages)
}

// Edit applies a mask-free edit: the base image is passed as a single raw
// reference image with no mask, so the prompt applies to the whole image.
func (v *VertexEditor) Edit(ctx context.Context, image imagenedit.InputImage, prompt string, cfg *imagenedit.EditConfig) (*imagenedit.EditResult, error) {
	if err := imagenedit.ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	if err := imagenedit.ValidateInputImage(image); err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = imagenedit.MaskFreeEditConfig()
	}

	modelName := v.resolveModel(cfg)

	refs := []genai.ReferenceImage{
		&genai.RawReferenceImage{
			ReferenceImage: toGenaiImage(image),
			ReferenceID:    1,
		},
	}

	result, err := v.client.Models.EditImage(ctx, modelName, prompt, refs, buildEditImageConfig(cfg))
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("edit failed: %w", err)
	}

	return convertImages(result.GeneratedImages)
}

// Upscale increases the resolution of an image by the given factor.
func (v *VertexEditor) Upscale(ctx context.Context, image imagenedit.InputImage, factor imagenedit.UpscaleFactor, cfg *imagenedit.EditConfig) (*imagenedit.EditResult, error) {
	if err := imagenedit.ValidateUpscaleFactor(factor); err != nil {
		return nil, err
	}
	if err := imagenedit.ValidateInputImage(image); err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = imagenedit.DefaultConfig()
	}

	modelName := v.resolveModel(cfg)

	upscaleCfg := &genai.UpscaleImageConfig{
		IncludeRAIReason: true,
	}
	if cfg.OutputMIMEType != "" {
		upscaleCfg.OutputMIMEType = cfg.OutputMIMEType
	}

	result, err := v.client.Models.UpscaleImage(ctx, modelName, toGenaiImage(image), factor.String(), upscaleCfg)
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("upscale failed: %w", err)
	}

	return convertImages(result.GeneratedImages)
}

// Models returns the model definitions supported by this backend.
// The first model (Imagen 2) is the default.
func (v *VertexEditor) Models() []imagenedit.ModelInfo {
	return []imagenedit.ModelInfo{
		Imagen2Info,
		Imagen3Info,
		Imagen3CapabilityInfo,
	}
}

// Close releases any resources held by the editor.
func (v *VertexEditor) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

// resolveModel determines which API model name to use.
// Falls back to the first model (default) if none specified.
func (v *VertexEditor) resolveModel(cfg *imagenedit.EditConfig) string {
	if cfg != nil && cfg.Model != "" {
		return string(cfg.Model)
	}
	models := v.Models()
	if len(models) == 0 {
		return APIModelImagen2
	}
	return models[0].APIModelName
}

// buildGenerateImagesConfig converts our config to the SDK's
// GenerateImagesConfig format.
func buildGenerateImagesConfig(cfg *imagenedit.EditConfig) *genai.GenerateImagesConfig {
	out := &genai.GenerateImagesConfig{
		IncludeRAIReason: true,
	}

	if cfg.NumberOfImages > 0 {
		out.NumberOfImages = int32(cfg.NumberOfImages)
	}
	if cfg.Seed != nil {
		out.Seed = genai.Ptr(*cfg.Seed)
		// Vertex rejects seeded requests unless watermarking is off.
		out.AddWatermark = false
	}
	if cfg.GuidanceScale != nil {
		out.GuidanceScale = genai.Ptr(*cfg.GuidanceScale)
	}
	if cfg.NegativePrompt != "" {
		out.NegativePrompt = cfg.NegativePrompt
	}
	if cfg.AspectRatio != "" {
		out.AspectRatio = cfg.AspectRatio.String()
	}
	if cfg.OutputMIMEType != "" {
		out.OutputMIMEType = cfg.OutputMIMEType
	}

	return out
}

// buildEditImageConfig converts our config to the SDK's EditImageConfig
// format. EditModeDefault is the mask-free mode.
func buildEditImageConfig(cfg *imagenedit.EditConfig) *genai.EditImageConfig {
	out := &genai.EditImageConfig{
		EditMode:         genai.EditModeDefault,
		IncludeRAIReason: true,
	}

	if cfg.NumberOfImages > 0 {
		out.NumberOfImages = int32(cfg.NumberOfImages)
	}
	if cfg.Seed != nil {
		out.Seed = genai.Ptr(*cfg.Seed)
	}
	if cfg.GuidanceScale != nil {
		out.GuidanceScale = genai.Ptr(*cfg.GuidanceScale)
	}
	if cfg.NegativePrompt != "" {
		out.NegativePrompt = cfg.NegativePrompt
	}
	if cfg.AspectRatio != "" {
		out.AspectRatio = cfg.AspectRatio.String()
	}
	if cfg.OutputMIMEType != "" {
		out.OutputMIMEType = cfg.OutputMIMEType
	}

	return out
}

// toGenaiImage converts an InputImage to the SDK's image type.
func toGenaiImage(image imagenedit.InputImage) *genai.Image {
	return &genai.Image{
		ImageBytes: image.Data,
		MIMEType:   image.MIMEType,
		GCSURI:     image.URI,
	}
}

// convertImages converts SDK results to our result type. Images withheld by
// the service keep their position with an empty payload and a filter reason.
func convertImages(generated []*genai.GeneratedImage) (*imagenedit.EditResult, error) {
	if len(generated) == 0 {
		return nil, imagenedit.ErrNoImages
	}

	result := &imagenedit.EditResult{
		Images: make([]imagenedit.GeneratedImage, 0, len(generated)),
	}

	for i, g := range generated {
		if g == nil {
			continue
		}

		img := imagenedit.GeneratedImage{
			Index:          i,
			EnhancedPrompt: g.EnhancedPrompt,
			FilteredReason: g.RAIFilteredReason,
		}
		if g.Image != nil {
			img.Data = g.Image.ImageBytes
			img.MIMEType = g.Image.MIMEType
		}
		result.Images = append(result.Images, img)
	}

	if len(result.Images) == 0 {
		return nil, imagenedit.ErrNoImages
	}

	return result, nil
}

// checkRateLimitError checks if an error from the API is a quota error.
// If so, it wraps it in a RateLimitError for standardized handling;
// otherwise returns nil and the caller keeps the original error.
func checkRateLimitError(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	if apiErr.Code != 429 && apiErr.Status != "RESOURCE_EXHAUSTED" {
		return nil
	}

	return &imagenedit.RateLimitError{
		RetryAfter: 60 * time.Second, // Default; API doesn't reliably provide Retry-After
		Model:      model,
		Err:        err,
	}
}
