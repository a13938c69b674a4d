// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName turns a menu name into a CSS class fragment: the name is
// transliterated to ASCII and lowercased, every run of characters outside
// [0-9a-z] becomes a single dash, and leading and trailing dashes are
// trimmed. "Main Menu" becomes "main-menu".
func NormalizeName(name string) string {
	s := cases.Lower(language.Und).String(unidecode.Unidecode(name))

	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') {
			b.WriteByte(c)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
