// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the client side assets served next to rendered menus.
package web

import "embed"

// Static holds the files under static/, served at /static/.
//
//go:embed all:static
var Static embed.FS
