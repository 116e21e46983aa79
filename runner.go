package imagenedit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// EditRequest describes one mask-free edit run: where the project lives,
// which image to edit, where to put the result, and what to do to it.
// Constructed once from CLI arguments and discarded after use.
type EditRequest struct {
	ProjectID  string
	Location   string
	InputFile  string
	OutputFile string
	Prompt     string
}

// EditRunner executes the linear mask-free edit sequence: load the input
// image, submit one edit request with the fixed parameter set, persist the
// first returned image, and report its byte size on stdout.
type EditRunner struct {
	editor ImageEditor
	logger *slog.Logger
	stdout io.Writer
}

// EditRunnerOption configures the EditRunner.
type EditRunnerOption func(*EditRunner)

// WithRunnerLogger sets a structured logger for the runner.
func WithRunnerLogger(logger *slog.Logger) EditRunnerOption {
	return func(r *EditRunner) {
		r.logger = logger
	}
}

// WithRunnerOutput redirects the runner's success line (stdout by default).
func WithRunnerOutput(w io.Writer) EditRunnerOption {
	return func(r *EditRunner) {
		r.stdout = w
	}
}

// NewEditRunner creates an EditRunner over the given editor.
func NewEditRunner(editor ImageEditor, opts ...EditRunnerOption) *EditRunner {
	r := &EditRunner{
		editor: editor,
		logger: slog.Default(),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loads req.InputFile, submits a single mask-free edit with seed 1,
// guidance scale 21, and one requested image, writes the first returned
// image to req.OutputFile, and prints its byte size.
//
// Failures are not retried or recovered; every error propagates to the
// caller immediately. The input file is read before any network call, so
// an unreadable input fails without touching the service.
func (r *EditRunner) Run(ctx context.Context, req EditRequest) (*EditResult, error) {
	if err := ValidatePrompt(req.Prompt); err != nil {
		return nil, err
	}

	image, err := LoadImageFile(req.InputFile)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("submitting mask-free edit",
		"project_id", req.ProjectID,
		"location", req.Location,
		"input_file", req.InputFile,
		"input_bytes", len(image.Data),
	)

	result, err := r.editor.Edit(ctx, image, req.Prompt, MaskFreeEditConfig())
	if err != nil {
		return nil, err
	}

	first, ok := result.First()
	if !ok {
		return nil, ErrNoImages
	}

	if err := first.Save(req.OutputFile); err != nil {
		return nil, err
	}

	fmt.Fprintf(r.stdout, "Created output image using %d bytes\n", first.Size())

	return result, nil
}
