// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import "github.com/olegiv/ocms-menu/internal/model"

// Node is a menu item with its children in source order.
type Node struct {
	Item     model.MenuItem
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// BuildTree arranges items into a forest. Items with a null parent become
// roots; every other item is appended to its parent's children in source
// order. An item whose parent is not among items is dropped silently, and
// so is everything below it. Items on a parent cycle are never reachable
// from a root and therefore never appear.
func BuildTree(items []model.MenuItem) []*Node {
	nodes := make(map[int64]*Node, len(items))
	for _, item := range items {
		if _, ok := nodes[item.ID]; !ok {
			nodes[item.ID] = &Node{Item: item}
		}
	}

	var roots []*Node
	placed := make(map[int64]bool, len(items))
	for _, item := range items {
		// Ids are unique in a menu; a repeated row is ignored.
		if placed[item.ID] {
			continue
		}
		placed[item.ID] = true

		node := nodes[item.ID]
		if !item.ParentID.Valid {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[item.ParentID.Int64]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots
}
