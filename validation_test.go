package imagenedit

import (
	"errors"
	"testing"
)

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantErr error
	}{
		{
			name:    "valid prompt",
			prompt:  "A sunset over mountains",
			wantErr: nil,
		},
		{
			name:    "empty prompt",
			prompt:  "",
			wantErr: ErrEmptyPrompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrompt(tt.prompt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePrompt() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInputImage(t *testing.T) {
	tests := []struct {
		name    string
		img     InputImage
		wantErr error
	}{
		{
			name: "valid png",
			img: InputImage{
				Data:     []byte("fake image data"),
				MIMEType: "image/png",
			},
			wantErr: nil,
		},
		{
			name: "valid jpeg",
			img: InputImage{
				Data:     []byte("fake image data"),
				MIMEType: "image/jpeg",
			},
			wantErr: nil,
		},
		{
			name: "valid image with URI only",
			img: InputImage{
				URI: "gs://bucket/image.png",
			},
			wantErr: nil,
		},
		{
			name:    "empty image",
			img:     InputImage{},
			wantErr: ErrEmptyImageData,
		},
		{
			name: "missing MIME type",
			img: InputImage{
				Data: []byte("fake image data"),
			},
			wantErr: ErrInvalidMIMEType,
		},
		{
			name: "unsupported MIME type",
			img: InputImage{
				Data:     []byte("fake image data"),
				MIMEType: "image/tiff",
			},
			wantErr: ErrInvalidMIMEType,
		},
		{
			name: "image too large",
			img: InputImage{
				Data:     make([]byte, MaxImageSize+1),
				MIMEType: "image/png",
			},
			wantErr: ErrImageTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputImage(tt.img)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateInputImage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpscaleFactor(t *testing.T) {
	tests := []struct {
		name    string
		factor  UpscaleFactor
		wantErr error
	}{
		{"x2", UpscaleX2, nil},
		{"x4", UpscaleX4, nil},
		{"empty", UpscaleFactor(""), ErrInvalidUpscaleFactor},
		{"x8", UpscaleFactor("x8"), ErrInvalidUpscaleFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpscaleFactor(tt.factor)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUpscaleFactor() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
