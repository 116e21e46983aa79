package imagenedit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mhpenta/imagenedit/ratelimiter"
)

const (
	// ModelImagen2 is Imagen 2 (imagegeneration@002), which supports both
	// text-to-image and mask-free editing.
	ModelImagen2 Model = "imagen-2"

	// ModelImagen3 is Imagen 3 text-to-image.
	ModelImagen3 Model = "imagen-3"

	// ModelImagen3Capability is the Imagen 3 editing/capability model.
	ModelImagen3Capability Model = "imagen-3-capability"

	ModelDefault Model = ModelImagen2
)

var (
	// ErrModelNotRegistered is returned when a model has no registered backend.
	ErrModelNotRegistered = errors.New("model not registered")

	// ErrProviderNotConfigured is returned when a backend lacks required config.
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// Provider represents a model backend.
type Provider string

const (
	ProviderVertexAI Provider = "vertex"
)

// ModelMapping maps a model identifier to its backend and actual API model
// name.
type ModelMapping struct {
	Provider        Provider
	ActualModelName string
}

// Manager implements ImageEditor, routing requests to the appropriate
// backend based on the Model in EditConfig.
type Manager struct {
	// Model to backend mapping
	modelMappings map[Model]ModelMapping

	// Backend instances
	providers map[Provider]ImageEditor

	// Default model to use when cfg.Model is empty
	defaultModel Model

	// Rate limiting (per model)
	rateLimiters map[Model]ratelimiter.Limiter

	// Model info (per model)
	modelInfo map[Model]*ModelInfo

	// Logger for structured logging (optional)
	logger *slog.Logger

	// Storage for persisting generated images (optional)
	storage Storage

	mu sync.RWMutex
}

// Ensure Manager implements the interface.
var _ ImageEditor = (*Manager)(nil)

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		logger:        slog.Default(),
		modelMappings: make(map[Model]ModelMapping),
		providers:     make(map[Provider]ImageEditor),
		rateLimiters:  make(map[Model]ratelimiter.Limiter),
		modelInfo:     make(map[Model]*ModelInfo),
		defaultModel:  ModelDefault,
	}
}

// RegisterModel registers a model with full info (including rate limits).
// Uses the default in-memory rate limiter. Use SetRateLimiter to override
// with a custom implementation.
func (m *Manager) RegisterModel(model Model, mapping ModelMapping, info *ModelInfo) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.modelMappings[model] = mapping
	m.modelInfo[model] = info

	if info.RateLimits.RequestsPerMinute > 0 {
		m.rateLimiters[model] = ratelimiter.New(info.RateLimits.RequestsPerMinute)
	}

	return m
}

// SetRateLimiter sets a custom rate limiter for a model.
// Use this to swap in a distributed rate limiter for production.
func (m *Manager) SetRateLimiter(model Model, limiter ratelimiter.Limiter) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rateLimiters[model] = limiter
	return m
}

// SetDefaultModel sets the default model used when cfg.Model is empty.
func (m *Manager) SetDefaultModel(model Model) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.defaultModel = model
	return m
}

// SetLogger sets a structured logger for the manager.
// When set, the manager logs requests, completions, errors, and rate
// limiting events.
func (m *Manager) SetLogger(logger *slog.Logger) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger
	return m
}

// SetStorage sets a storage backend for persisting generated images.
// Use SaveResult to save images after generation.
func (m *Manager) SetStorage(storage Storage) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.storage = storage
	return m
}

// Storage returns the configured storage backend, or nil if not set.
func (m *Manager) Storage() Storage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storage
}

// SaveResult saves all images from an EditResult to the configured storage.
// Returns StorageResults for each saved image, or an error.
// If no storage is configured, returns ErrStorageNotConfigured.
func (m *Manager) SaveResult(ctx context.Context, result *EditResult, basePath string) ([]StorageResult, error) {
	m.mu.RLock()
	storage := m.storage
	m.mu.RUnlock()

	return SaveToStorage(ctx, storage, result, basePath)
}

// Generate creates images from a text prompt.
func (m *Manager) Generate(ctx context.Context, prompt string, cfg *EditConfig) (*EditResult, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	model := m.resolveModel(cfg)
	start := time.Now()

	m.logger.Debug("starting image generation",
		"model", string(model),
		"prompt_length", len(prompt),
	)

	if err := m.checkRateLimit(ctx, model, cfg); err != nil {
		m.logger.Warn("rate limit hit",
			"model", string(model),
			"error", err.Error(),
		)
		return nil, err
	}

	editor, actualCfg, err := m.getEditorForConfig(cfg)
	if err != nil {
		m.logger.Error("failed to get backend",
			"model", string(model),
			"error", err.Error(),
		)

		return nil, err
	}

	result, err := editor.Generate(ctx, prompt, actualCfg)
	duration := time.Since(start)

	if err != nil {
		m.logger.Error("generation failed",
			"model", string(model),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)

		return nil, err
	}

	m.logger.Info("generation completed",
		"model", string(model),
		"duration_ms", duration.Milliseconds(),
		"image_count", len(result.Images),
		"total_bytes", result.TotalBytes(),
	)

	return result, nil
}

// Edit applies a mask-free edit to a base image.
func (m *Manager) Edit(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error) {
	if cfg == nil {
		cfg = MaskFreeEditConfig()
	}

	model := m.resolveModel(cfg)
	start := time.Now()

	m.logger.Debug("starting mask-free edit",
		"model", string(model),
		"prompt_length", len(prompt),
		"image_size", len(image.Data),
	)

	if err := m.checkRateLimit(ctx, model, cfg); err != nil {
		m.logger.Warn("rate limit hit for edit",
			"model", string(model),
			"error", err.Error(),
		)
		return nil, err
	}

	editor, actualCfg, err := m.getEditorForConfig(cfg)
	if err != nil {
		m.logger.Error("failed to get backend for edit",
			"model", string(model),
			"error", err.Error(),
		)

		return nil, err
	}

	result, err := editor.Edit(ctx, image, prompt, actualCfg)
	duration := time.Since(start)

	if err != nil {
		m.logger.Error("edit failed",
			"model", string(model),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)

		return nil, err
	}

	m.logger.Info("edit completed",
		"model", string(model),
		"duration_ms", duration.Milliseconds(),
		"image_count", len(result.Images),
		"total_bytes", result.TotalBytes(),
	)

	return result, nil
}

// Upscale increases the resolution of an image by the given factor.
func (m *Manager) Upscale(ctx context.Context, image InputImage, factor UpscaleFactor, cfg *EditConfig) (*EditResult, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	model := m.resolveModel(cfg)
	start := time.Now()

	m.logger.Debug("starting upscale",
		"model", string(model),
		"factor", factor.String(),
		"image_size", len(image.Data),
	)

	if err := m.checkRateLimit(ctx, model, cfg); err != nil {
		m.logger.Warn("rate limit hit for upscale",
			"model", string(model),
			"error", err.Error(),
		)
		return nil, err
	}

	editor, actualCfg, err := m.getEditorForConfig(cfg)
	if err != nil {
		m.logger.Error("failed to get backend for upscale",
			"model", string(model),
			"error", err.Error(),
		)

		return nil, err
	}

	result, err := editor.Upscale(ctx, image, factor, actualCfg)
	duration := time.Since(start)

	if err != nil {
		m.logger.Error("upscale failed",
			"model", string(model),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)

		return nil, err
	}

	m.logger.Info("upscale completed",
		"model", string(model),
		"duration_ms", duration.Milliseconds(),
		"factor", factor.String(),
		"total_bytes", result.TotalBytes(),
	)

	return result, nil
}

// Models returns all registered model definitions.
func (m *Manager) Models() []ModelInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	models := make([]ModelInfo, 0, len(m.modelInfo))
	for _, info := range m.modelInfo {
		if info != nil {
			models = append(models, *info)
		}
	}
	return models
}

// Close releases all backend resources.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for provider, editor := range m.providers {
		if err := editor.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", provider, err))
		}
	}
	m.providers = make(map[Provider]ImageEditor)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ListModels returns all registered models.
func (m *Manager) ListModels() []Model {
	m.mu.RLock()
	defer m.mu.RUnlock()

	models := make([]Model, 0, len(m.modelMappings))
	for model := range m.modelMappings {
		models = append(models, model)
	}
	return models
}

// GetModelProvider returns the backend for a model.
func (m *Manager) GetModelProvider(model Model) (Provider, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mapping, ok := m.modelMappings[model]
	if !ok {
		return "", false
	}
	return mapping.Provider, true
}

// GetModelInfo returns model information for a specific model.
func (m *Manager) GetModelInfo(model Model) (*ModelInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.modelInfo[model]
	return info, ok
}

// checkRateLimit checks the per-model request quota and optionally waits.
func (m *Manager) checkRateLimit(ctx context.Context, model Model, cfg *EditConfig) error {
	m.mu.RLock()
	limiter := m.rateLimiters[model]
	m.mu.RUnlock()

	if limiter == nil {
		return nil
	}

	if cfg.WaitOnRateLimit {
		return limiter.WaitAndConsume(ctx, 1, cfg.MaxWaitDuration)
	}

	if !limiter.TryConsume(1) {
		return &RateLimitError{
			RetryAfter: limiter.TimeUntilAvailable(1),
			Model:      string(model),
		}
	}

	return nil
}

// resolveModel determines the actual model to use.
func (m *Manager) resolveModel(cfg *EditConfig) Model {
	model := ModelDefault
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if model == ModelDefault {
		model = m.defaultModel
	}

	return model
}

// getEditorForConfig returns the appropriate backend and adjusted config.
func (m *Manager) getEditorForConfig(cfg *EditConfig) (ImageEditor, *EditConfig, error) {
	model := m.resolveModel(cfg)

	m.mu.RLock()
	mapping, ok := m.modelMappings[model]
	m.mu.RUnlock()

	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrModelNotRegistered, model)
	}

	editor, err := m.getProvider(mapping.Provider)
	if err != nil {
		return nil, nil, err
	}

	actualCfg := cfg
	if actualCfg == nil {
		actualCfg = DefaultConfig()
	}
	cfgCopy := *actualCfg
	cfgCopy.Model = Model(mapping.ActualModelName)

	return editor, &cfgCopy, nil
}

// getProvider returns the backend instance for the given provider type.
func (m *Manager) getProvider(provider Provider) (ImageEditor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	editor, ok := m.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, provider)
	}
	return editor, nil
}
