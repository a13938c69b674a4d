// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version provides build-time version information.
package version

// Set at build time via -ldflags "-X github.com/olegiv/ocms-menu/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info contains build-time version information.
type Info struct {
	Version   string `json:"version"`              // Semantic version from git tags (e.g., "v1.2.3")
	GitCommit string `json:"git_commit,omitempty"` // Short git commit hash (e.g., "abc1234")
	BuildTime string `json:"build_time,omitempty"` // Build timestamp in RFC3339 format
}

// Get returns the version of the running binary.
func Get() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
}

// String formats the version as "v1.2.3 (abc1234)", leaving out what is unknown.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.GitCommit != "" {
		v += " (" + i.GitCommit + ")"
	}
	return v
}
