// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/olegiv/ocms-menu/internal/model"
)

// Walker derives CSS class names for the elements of one menu. Every
// element gets "{prefix}-{sub}" followed by its additional classes.
type Walker struct {
	prefix string
}

// NewWalker returns a Walker for the given class prefix, e.g. "menu-main".
func NewWalker(prefix string) Walker {
	return Walker{prefix: prefix}
}

// Classes returns the class attribute value for sub. Additional classes may
// hold several space separated names; duplicates and empty names are
// dropped and the first occurrence wins.
func (w Walker) Classes(sub string, additional ...string) string {
	seen := make(map[string]bool)
	var out []string
	add := func(class string) {
		if class == "" || seen[class] {
			return
		}
		seen[class] = true
		out = append(out, class)
	}

	add(w.prefix + "-" + sub)
	for _, a := range additional {
		for _, class := range strings.Fields(a) {
			add(class)
		}
	}
	return strings.Join(out, " ")
}

// positional returns the classes every element of a level carries.
func positional(level int, leaf bool) []string {
	classes := []string{model.ClassLevel + strconv.Itoa(level)}
	if leaf {
		classes = append(classes, model.ClassIsLeave)
	}
	return classes
}

func with(classes []string, slot sql.NullString) []string {
	out := make([]string, 0, len(classes)+1)
	out = append(out, classes...)
	if slot.Valid {
		out = append(out, slot.String)
	}
	return out
}
