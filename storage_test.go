package imagenedit

import (
	"context"
	"errors"
	"testing"
)

// fakeStorage records saved files and returns deterministic URLs.
type fakeStorage struct {
	saved map[string][]byte
	err   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved[path] = data
	return "https://storage.example/" + path, nil
}

func TestSaveToStorage_SingleImage(t *testing.T) {
	store := newFakeStorage()
	result := &EditResult{
		Images: []GeneratedImage{
			{Data: []byte("png-data"), MIMEType: "image/png"},
		},
	}

	results, err := SaveToStorage(context.Background(), store, result, "edits/output")
	if err != nil {
		t.Fatalf("SaveToStorage() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Path != "edits/output.png" {
		t.Errorf("path = %q, want edits/output.png", results[0].Path)
	}
	if results[0].Size != 8 {
		t.Errorf("size = %d, want 8", results[0].Size)
	}
	if _, ok := store.saved["edits/output.png"]; !ok {
		t.Error("image was not saved under the expected path")
	}
}

func TestSaveToStorage_MultipleImagesGetIndexSuffix(t *testing.T) {
	store := newFakeStorage()
	result := &EditResult{
		Images: []GeneratedImage{
			{Data: []byte("a"), MIMEType: "image/png"},
			{Data: []byte("b"), MIMEType: "image/jpeg"},
		},
	}

	results, err := SaveToStorage(context.Background(), store, result, "edits/output")
	if err != nil {
		t.Fatalf("SaveToStorage() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Path != "edits/output_0.png" || results[1].Path != "edits/output_1.jpg" {
		t.Errorf("paths = %q, %q", results[0].Path, results[1].Path)
	}
}

func TestSaveToStorage_NoStorage(t *testing.T) {
	_, err := SaveToStorage(context.Background(), nil, &EditResult{}, "x")
	if !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("error = %v, want ErrStorageNotConfigured", err)
	}
}

func TestSaveToStorage_EmptyResult(t *testing.T) {
	results, err := SaveToStorage(context.Background(), newFakeStorage(), &EditResult{}, "x")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results for empty input, got %v", results)
	}
}

func TestSaveToStorage_UploadErrorReturnsPartial(t *testing.T) {
	store := newFakeStorage()
	store.err = errors.New("bucket unavailable")

	result := &EditResult{
		Images: []GeneratedImage{{Data: []byte("a"), MIMEType: "image/png"}},
	}
	_, err := SaveToStorage(context.Background(), store, result, "x")
	if err == nil {
		t.Error("expected upload error to propagate")
	}
}
