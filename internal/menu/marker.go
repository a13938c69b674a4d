// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/obfuscate"
)

// Names of the client side functions in web/static/js/menu.js.
const (
	jsMarkActiveItem = "OcmsMenu.markActiveMenuItem"
	jsMarkActiveTree = "OcmsMenu.markActiveMenuItemTree"
)

// Marker produces the client side call that highlights the menu item of the
// current page.
type Marker struct {
	source Source
	ids    obfuscate.Obfuscator
}

// NewMarker creates a Marker.
func NewMarker(source Source, ids obfuscate.Obfuscator) *Marker {
	return &Marker{source: source, ids: ids}
}

// Mark returns a JavaScript statement marking the first item of the menu that
// links to pageID, or "" when no item does. With withDescendants the
// statement also marks every element below the item.
func (m *Marker) Mark(ctx context.Context, menuID, pageID int64, withDescendants bool) (string, error) {
	itemID, ok, err := m.source.GetItemIDForPage(ctx, menuID, pageID)
	if err != nil || !ok {
		return "", err
	}

	elementID, err := m.ElementID(itemID)
	if err != nil {
		return "", err
	}
	arg, err := json.Marshal(elementID)
	if err != nil {
		return "", err
	}

	fn := jsMarkActiveItem
	if withDescendants {
		fn = jsMarkActiveTree
	}
	return fmt.Sprintf("%s(%s);", fn, arg), nil
}

// ElementID returns the DOM id the renderer gives to a menu item.
func (m *Marker) ElementID(itemID int64) (string, error) {
	code, err := m.ids.Encode(itemID, model.LabelMenuItem)
	if err != nil {
		return "", fmt.Errorf("encoding menu item %d: %w", itemID, err)
	}
	return model.ElementIDPrefix + code, nil
}
