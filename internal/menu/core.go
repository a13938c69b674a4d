// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"context"

	"github.com/olegiv/ocms-menu/internal/model"
)

// Authorizer binds page access checks to a viewer.
type Authorizer interface {
	ForViewer(viewer model.Viewer) AccessChecker
}

// DefaultGenerator renders menus from their stored items: it filters them
// for the viewer, builds the tree, prunes empty folders and renders HTML.
type DefaultGenerator struct {
	source   Source
	auth     Authorizer
	renderer *Renderer
}

// NewDefaultGenerator creates the generator registered as model.GeneratorCore.
func NewDefaultGenerator(source Source, auth Authorizer, renderer *Renderer) *DefaultGenerator {
	return &DefaultGenerator{source: source, auth: auth, renderer: renderer}
}

// Generate implements Generator.
func (g *DefaultGenerator) Generate(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error) {
	menu, err := g.source.GetMenuDetails(ctx, menuID)
	if err != nil {
		return "", err
	}

	items, err := g.source.ListMenuItems(ctx, menuID, viewer.LanguageID)
	if err != nil {
		return "", err
	}

	items, err = FilterAuthorized(ctx, items, g.auth.ForViewer(viewer), viewer.Anonymous)
	if err != nil {
		return "", err
	}

	menuName := menu.Name
	if name != nil {
		menuName = *name
	}
	return g.renderer.Render(menuName, Prune(BuildTree(items)))
}
