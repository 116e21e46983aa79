// Command imagen-edit edits a local image with Vertex AI Imagen without
// using a mask: the edit is applied to the entire image and the result is
// saved to a new file.
//
// Usage:
//
//	imagen-edit --project_id <project-id> --location <location> \
//	    --input_file <filepath> --output_file <filepath> --prompt <text>
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mhpenta/imagenedit"
	"github.com/mhpenta/imagenedit/provider/vertex"
	s3storage "github.com/mhpenta/imagenedit/storage/s3"
)

type options struct {
	projectID  string
	location   string
	inputFile  string
	outputFile string
	prompt     string
}

// parseArgs parses CLI flags into options. Missing required flags return an
// error (with usage printed to the flag set's output) before anything else
// runs - no client is constructed and no network call is attempted.
func parseArgs(name string, args []string) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	opts := &options{}
	fs.StringVar(&opts.projectID, "project_id", "", "Your Cloud project ID.")
	fs.StringVar(&opts.location, "location", "us-central1", "The location in which to initialize Vertex AI.")
	fs.StringVar(&opts.inputFile, "input_file", "", "The local path to the input file (e.g., 'my-input.png').")
	fs.StringVar(&opts.outputFile, "output_file", "", "The local path to the output file (e.g., 'my-output.png').")
	fs.StringVar(&opts.prompt, "prompt", "", "The text prompt describing what you want to see (e.g., 'a dog').")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"project_id", opts.projectID},
		{"input_file", opts.inputFile},
		{"output_file", opts.outputFile},
		{"prompt", opts.prompt},
	} {
		if f.value == "" {
			missing = append(missing, "--"+f.name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(fs.Output(), "missing required flags: %s\n", strings.Join(missing, ", "))
		fs.Usage()
		return nil, fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}

	return opts, nil
}

// newLogger builds a text slog logger on stderr, keeping stdout free for
// the byte-count result line.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}

func main() {
	opts, err := parseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg := LoadConfig()
	logger := newLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	if err := run(ctx, logger, cfg, opts); err != nil {
		logger.Error("edit run failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *Config, opts *options) error {
	editor, err := vertex.New(ctx, vertex.Config{
		ProjectID: opts.projectID,
		Location:  opts.location,
	})
	if err != nil {
		return err
	}

	managerOpts := []imagenedit.ManagerOption{
		imagenedit.WithLogger(logger),
	}
	if cfg.S3Bucket != "" {
		store, err := s3storage.New(ctx, s3storage.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return err
		}
		managerOpts = append(managerOpts, imagenedit.WithStorage(store))
	}

	manager := imagenedit.NewManager(editor, managerOpts...)
	defer manager.Close()

	runner := imagenedit.NewEditRunner(manager,
		imagenedit.WithRunnerLogger(logger),
	)

	result, err := runner.Run(ctx, imagenedit.EditRequest{
		ProjectID:  opts.projectID,
		Location:   opts.location,
		InputFile:  opts.inputFile,
		OutputFile: opts.outputFile,
		Prompt:     opts.prompt,
	})
	if err != nil {
		return err
	}

	if manager.Storage() != nil {
		mirrorResult(ctx, logger, manager, result, cfg.S3Prefix, opts.outputFile)
	}

	return nil
}

// mirrorResult uploads the result to the configured bucket. The local file
// is already written by this point, so mirror failures are logged, not
// fatal.
func mirrorResult(ctx context.Context, logger *slog.Logger, manager *imagenedit.Manager, result *imagenedit.EditResult, prefix, outputFile string) {
	base := filepath.Base(outputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	saved, err := manager.SaveResult(ctx, result, path.Join(prefix, base))
	if err != nil {
		logger.Warn("mirroring result to object storage failed", "error", err.Error())
		return
	}
	for _, s := range saved {
		logger.Info("mirrored image to object storage",
			"url", s.URL,
			"bytes", s.Size,
		)
	}
}
