package imagenedit

import "testing"

func TestMaskFreeEditConfig(t *testing.T) {
	cfg := MaskFreeEditConfig()

	if cfg.Seed == nil || *cfg.Seed != 1 {
		t.Errorf("seed = %v, want 1", cfg.Seed)
	}
	if cfg.GuidanceScale == nil || *cfg.GuidanceScale != 21 {
		t.Errorf("guidance scale = %v, want 21", cfg.GuidanceScale)
	}
	if cfg.NumberOfImages != 1 {
		t.Errorf("number of images = %d, want 1", cfg.NumberOfImages)
	}
	if cfg.Model != ModelDefault {
		t.Errorf("model = %q, want default", cfg.Model)
	}
}

func TestEditConfig_WithModel(t *testing.T) {
	base := MaskFreeEditConfig()
	derived := base.WithModel(ModelImagen3)

	if derived.Model != ModelImagen3 {
		t.Errorf("derived model = %q, want imagen-3", derived.Model)
	}
	if base.Model != ModelDefault {
		t.Error("WithModel must not mutate the receiver")
	}
	if derived.Seed == nil || *derived.Seed != 1 {
		t.Error("WithModel must preserve other fields")
	}

	var nilCfg *EditConfig
	fromNil := nilCfg.WithModel(ModelImagen2)
	if fromNil == nil || fromNil.Model != ModelImagen2 {
		t.Error("WithModel on nil receiver should build a fresh config")
	}
}
