// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/obfuscate"
)

// URLEncoder builds the URL of a page that has no alias.
type URLEncoder interface {
	PageURL(pageID int64) (string, error)
}

// PageURLs builds page URLs of the form /pag/{code}.
type PageURLs struct {
	Obfuscator obfuscate.Obfuscator
}

// PageURL implements URLEncoder.
func (p PageURLs) PageURL(pageID int64) (string, error) {
	code, err := p.Obfuscator.Encode(pageID, model.LabelPage)
	if err != nil {
		return "", err
	}
	return "/" + model.LabelPage + "/" + code, nil
}

// Renderer serializes a menu tree to HTML. It performs no I/O; the same tree
// always renders to the same markup.
type Renderer struct {
	ids  obfuscate.Obfuscator
	urls URLEncoder
}

// NewRenderer creates a Renderer. ids encodes menu item ids into element ids,
// urls resolves pages without an alias.
func NewRenderer(ids obfuscate.Obfuscator, urls URLEncoder) *Renderer {
	return &Renderer{ids: ids, urls: urls}
}

// Render returns the markup of the menu named name, or "" when roots is empty.
// The name is normalized with NormalizeName before use.
func (r *Renderer) Render(name string, roots []*Node) (string, error) {
	if len(roots) == 0 {
		return "", nil
	}

	name = NormalizeName(name)
	walker := NewWalker("menu-" + name)

	nav := element(atom.Nav,
		attr("class", walker.Classes("nav")),
		attr("id", "menu-"+name),
	)
	list, err := r.list(walker, roots, 0)
	if err != nil {
		return "", err
	}
	nav.AppendChild(list)

	var b strings.Builder
	if err := html.Render(&b, nav); err != nil {
		return "", fmt.Errorf("serializing menu: %w", err)
	}
	return b.String(), nil
}

func (r *Renderer) list(walker Walker, nodes []*Node, level int) (*html.Node, error) {
	ul := element(atom.Ul, attr("class", walker.Classes("list", positional(level, false)...)))

	for _, node := range nodes {
		li, err := r.item(walker, node, level)
		if err != nil {
			return nil, err
		}
		ul.AppendChild(li)
	}
	return ul, nil
}

func (r *Renderer) item(walker Walker, node *Node, level int) (*html.Node, error) {
	item := node.Item
	classes := positional(level, node.IsLeaf())

	code, err := r.ids.Encode(item.ID, model.LabelMenuItem)
	if err != nil {
		return nil, fmt.Errorf("encoding menu item %d: %w", item.ID, err)
	}
	li := element(atom.Li,
		attr("class", walker.Classes("item", with(classes, item.Class1)...)),
		attr("id", model.ElementIDPrefix+code),
	)

	if item.Text.Valid {
		a := element(atom.A, attr("class", walker.Classes("item-link", with(classes, item.Class2)...)))
		href, ok, err := r.href(item)
		if err != nil {
			return nil, err
		}
		if ok {
			a.Attr = append(a.Attr, attr("href", href))
		}

		a.AppendChild(element(atom.Span, attr("class", walker.Classes("item-icon", with(classes, item.Class3)...))))
		label := element(atom.Span, attr("class", walker.Classes("item-name", with(classes, item.Class4)...)))
		label.AppendChild(&html.Node{Type: html.TextNode, Data: item.Text.String})
		a.AppendChild(label)
		li.AppendChild(a)
	}

	if !node.IsLeaf() {
		ul, err := r.list(walker, node.Children, level+1)
		if err != nil {
			return nil, err
		}
		li.AppendChild(ul)
	}
	return li, nil
}

// href returns the link target of an item. An item without alias and page
// has no target.
func (r *Renderer) href(item model.MenuItem) (string, bool, error) {
	if item.PageAlias.Valid {
		return "/" + item.PageAlias.String, true, nil
	}
	if !item.PageID.Valid {
		return "", false, nil
	}
	url, err := r.urls.PageURL(item.PageID.Int64)
	if err != nil {
		return "", false, fmt.Errorf("building url of page %d: %w", item.PageID.Int64, err)
	}
	return url, true, nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
