// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/ocms-menu/internal/model"
)

// StaticGenerator serves hand written menu markup stored with the menu.
// The markup is sanitized on every render so that stored content can never
// inject scripts. The name argument is ignored.
type StaticGenerator struct {
	source Source
	policy *bluemonday.Policy
}

// NewStaticGenerator creates the generator registered as model.GeneratorStatic.
func NewStaticGenerator(source Source) *StaticGenerator {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("nav")
	policy.AllowAttrs("class", "id").Globally()
	return &StaticGenerator{source: source, policy: policy}
}

// Generate implements Generator.
func (g *StaticGenerator) Generate(ctx context.Context, _ model.Viewer, menuID int64, _ *string) (string, error) {
	menu, err := g.source.GetMenuDetails(ctx, menuID)
	if err != nil {
		return "", err
	}
	if !menu.StaticHTML.Valid {
		return "", nil
	}
	return g.policy.Sanitize(menu.StaticHTML.String), nil
}
