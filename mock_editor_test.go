package imagenedit

import (
	"context"
)

// MockImageEditor is a mock implementation of ImageEditor.
type MockImageEditor struct {
	GenerateFunc func(ctx context.Context, prompt string, cfg *EditConfig) (*EditResult, error)
	EditFunc     func(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error)
	UpscaleFunc  func(ctx context.Context, image InputImage, factor UpscaleFactor, cfg *EditConfig) (*EditResult, error)
	ModelsFunc   func() []ModelInfo
	CloseFunc    func() error
}

func (m *MockImageEditor) Generate(ctx context.Context, prompt string, cfg *EditConfig) (*EditResult, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, cfg)
	}
	return &EditResult{}, nil
}

func (m *MockImageEditor) Edit(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, image, prompt, cfg)
	}
	return &EditResult{}, nil
}

func (m *MockImageEditor) Upscale(ctx context.Context, image InputImage, factor UpscaleFactor, cfg *EditConfig) (*EditResult, error) {
	if m.UpscaleFunc != nil {
		return m.UpscaleFunc(ctx, image, factor, cfg)
	}
	return &EditResult{}, nil
}

func (m *MockImageEditor) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{}
}

func (m *MockImageEditor) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
