package imagenedit

import (
	"log/slog"
)

// ManagerOption configures the Manager.
type ManagerOption func(*Manager)

// WithLogger sets a structured logger for the manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithStorage sets a storage backend for persisting generated images.
func WithStorage(storage Storage) ManagerOption {
	return func(m *Manager) {
		m.storage = storage
	}
}

// WithDefaultModel sets the default model used when cfg.Model is empty.
func WithDefaultModel(model Model) ManagerOption {
	return func(m *Manager) {
		m.defaultModel = model
	}
}

// NewManager creates a Manager with the given backend and options.
//
// Example:
//
//	editor, err := vertex.New(ctx, vertex.Config{ProjectID: project, Location: location})
//	if err != nil {
//	    return err
//	}
//	manager := imagenedit.NewManager(editor)
//
// With options:
//
//	manager := imagenedit.NewManager(editor,
//	    imagenedit.WithLogger(slog.Default()),
//	    imagenedit.WithDefaultModel(imagenedit.ModelImagen3),
//	)
func NewManager(defaultEditor ImageEditor, opts ...ManagerOption) *Manager {
	m := New()

	models := defaultEditor.Models()
	for i := range models {
		info := &models[i]

		m.providers[info.Provider] = defaultEditor

		m.RegisterModel(Model(info.Name),
			ModelMapping{
				Provider:        info.Provider,
				ActualModelName: info.APIModelName,
			},
			info)
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}
