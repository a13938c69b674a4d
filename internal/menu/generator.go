// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/olegiv/ocms-menu/internal/model"
)

var (
	// ErrMenuNotFound is returned when a menu id does not exist.
	ErrMenuNotFound = errors.New("menu not found")
	// ErrUnknownGenerator is returned when a menu selects a generator that is
	// not registered.
	ErrUnknownGenerator = errors.New("unknown menu generator")
)

// Generator renders the markup of a menu for a viewer. When name is not nil
// it replaces the stored menu name in the generated class names and ids.
type Generator interface {
	Generate(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error) {
	return f(ctx, viewer, menuID, name)
}

// Registry maps generator selectors, as stored in menus.generator, to
// generators.
type Registry struct {
	generators map[string]Generator
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		generators: make(map[string]Generator),
		logger:     logger,
	}
}

// Register adds a generator under name.
func (r *Registry) Register(name string, g Generator) error {
	if name == "" {
		return errors.New("generator name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator %q already registered", name)
	}
	r.generators[name] = g
	r.logger.Info("menu generator registered", "name", name)

	return nil
}

// Get returns the generator registered under name.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return g, nil
}

// Names returns the registered selectors in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
