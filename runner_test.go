package imagenedit

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG writes a small fake PNG file and returns its path.
func writeTestPNG(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing test input: %v", err)
	}
	return path
}

func TestEditRunner_Run(t *testing.T) {
	inputData := []byte("fake-png-input")
	inputPath := writeTestPNG(t, "input.png", inputData)
	outputPath := filepath.Join(t.TempDir(), "output.png")

	var gotImage InputImage
	var gotPrompt string
	var gotCfg *EditConfig

	editor := &MockImageEditor{
		EditFunc: func(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error) {
			gotImage = image
			gotPrompt = prompt
			gotCfg = cfg
			return &EditResult{
				Images: []GeneratedImage{
					{Data: []byte("edited-png"), MIMEType: "image/png"},
				},
			}, nil
		},
	}

	var stdout bytes.Buffer
	runner := NewEditRunner(editor, WithRunnerOutput(&stdout))

	result, err := runner.Run(context.Background(), EditRequest{
		ProjectID:  "my-project",
		Location:   "us-central1",
		InputFile:  inputPath,
		OutputFile: outputPath,
		Prompt:     "a dog wearing a hat",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Input image forwarded unchanged.
	if !bytes.Equal(gotImage.Data, inputData) {
		t.Error("input image bytes were not forwarded unchanged")
	}
	if gotImage.MIMEType != "image/png" {
		t.Errorf("input MIME type = %q, want image/png", gotImage.MIMEType)
	}
	if gotPrompt != "a dog wearing a hat" {
		t.Errorf("prompt = %q", gotPrompt)
	}

	// Fixed parameters pass through unchanged regardless of prompt content.
	if gotCfg == nil {
		t.Fatal("config was nil")
	}
	if gotCfg.Seed == nil || *gotCfg.Seed != 1 {
		t.Errorf("seed = %v, want 1", gotCfg.Seed)
	}
	if gotCfg.GuidanceScale == nil || *gotCfg.GuidanceScale != 21 {
		t.Errorf("guidance scale = %v, want 21", gotCfg.GuidanceScale)
	}
	if gotCfg.NumberOfImages != 1 {
		t.Errorf("number of images = %d, want 1", gotCfg.NumberOfImages)
	}

	// Output file written with the first returned image.
	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if string(written) != "edited-png" {
		t.Errorf("output file content = %q", written)
	}

	// Single diagnostic line with a positive byte count.
	line := stdout.String()
	if line != "Created output image using 10 bytes\n" {
		t.Errorf("stdout = %q", line)
	}

	if first, ok := result.First(); !ok || first.Size() == 0 {
		t.Error("expected non-empty first image in result")
	}
}

func TestEditRunner_Run_MissingInputFile(t *testing.T) {
	edited := false
	editor := &MockImageEditor{
		EditFunc: func(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error) {
			edited = true
			return &EditResult{}, nil
		},
	}

	runner := NewEditRunner(editor, WithRunnerOutput(&bytes.Buffer{}))

	_, err := runner.Run(context.Background(), EditRequest{
		InputFile:  filepath.Join(t.TempDir(), "does-not-exist.png"),
		OutputFile: filepath.Join(t.TempDir(), "out.png"),
		Prompt:     "a dog",
	})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if edited {
		t.Error("editor was called despite unreadable input; load must fail first")
	}
}

func TestEditRunner_Run_EmptyPrompt(t *testing.T) {
	editor := &MockImageEditor{}
	runner := NewEditRunner(editor, WithRunnerOutput(&bytes.Buffer{}))

	_, err := runner.Run(context.Background(), EditRequest{
		InputFile:  writeTestPNG(t, "in.png", []byte("x")),
		OutputFile: filepath.Join(t.TempDir(), "out.png"),
	})
	if !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("error = %v, want ErrEmptyPrompt", err)
	}
}

func TestEditRunner_Run_NoImages(t *testing.T) {
	editor := &MockImageEditor{
		EditFunc: func(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error) {
			return &EditResult{}, nil
		},
	}

	runner := NewEditRunner(editor, WithRunnerOutput(&bytes.Buffer{}))

	_, err := runner.Run(context.Background(), EditRequest{
		InputFile:  writeTestPNG(t, "in.png", []byte("x")),
		OutputFile: filepath.Join(t.TempDir(), "out.png"),
		Prompt:     "a dog",
	})
	if !errors.Is(err, ErrNoImages) {
		t.Errorf("error = %v, want ErrNoImages", err)
	}
}

func TestEditRunner_Run_EditErrorPropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	editor := &MockImageEditor{
		EditFunc: func(ctx context.Context, image InputImage, prompt string, cfg *EditConfig) (*EditResult, error) {
			return nil, boom
		},
	}

	var stdout bytes.Buffer
	runner := NewEditRunner(editor, WithRunnerOutput(&stdout))

	outputPath := filepath.Join(t.TempDir(), "out.png")
	_, err := runner.Run(context.Background(), EditRequest{
		InputFile:  writeTestPNG(t, "in.png", []byte("x")),
		OutputFile: outputPath,
		Prompt:     "a dog",
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want propagated editor error", err)
	}
	if _, statErr := os.Stat(outputPath); statErr == nil {
		t.Error("output file should not exist after a failed edit")
	}
	if strings.Contains(stdout.String(), "Created") {
		t.Error("no success line should be printed on failure")
	}
}
