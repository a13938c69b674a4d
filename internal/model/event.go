// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Event levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryMenu    = "menu"
	EventCategoryCache   = "cache"
	EventCategoryProfile = "profile"
	EventCategorySystem  = "system"
)

// Names of the events published on the event bus.
const (
	// EventProfileChanged is raised when the permissions of a profile change.
	// Payload: ProfileEvent.
	EventProfileChanged = "profile.changed"
	// EventProfileObsolete is raised when a profile is no longer in use.
	// Payload: ProfileEvent.
	EventProfileObsolete = "profile.obsolete"
	// EventFlushAllCaches is raised when all caches of a company must be dropped.
	// Payload: FlushEvent.
	EventFlushAllCaches = "cache.flush_all"
)

// ProfileEvent is the payload of EventProfileChanged and EventProfileObsolete.
type ProfileEvent struct {
	CompanyID int64
	ProfileID int64
}

// FlushEvent is the payload of EventFlushAllCaches.
type FlushEvent struct {
	CompanyID int64
}
