// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

// Prune removes, depth first, every node that has neither a page nor any
// child left after its own children were pruned. Nodes with a page are
// always kept. The input nodes are modified in place.
func Prune(nodes []*Node) []*Node {
	return prune(nodes, make(map[*Node]bool))
}

func prune(nodes []*Node, seen map[*Node]bool) []*Node {
	var kept []*Node
	for _, node := range nodes {
		// A node can only be reached once; this guards hand built trees.
		if seen[node] {
			continue
		}
		seen[node] = true

		node.Children = prune(node.Children, seen)
		if node.IsLeaf() && !node.Item.PageID.Valid {
			continue
		}
		kept = append(kept, node)
	}
	return kept
}
