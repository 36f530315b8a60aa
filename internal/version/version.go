/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package version exposes the build version.
package version

// Version is the current version of ArenaComp.
// This is set at build time via ldflags:
//
//	-X github.com/arenaworks/arenacomp/internal/version.Version=X.Y.Z
var Version = "0.1.0"
