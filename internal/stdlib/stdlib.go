// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package stdlib holds the skippy prelude.
package stdlib

import _ "embed"

// Prelude is the optional standard prelude, evaluated one line at a time
// before any user input when enabled.
//
//go:embed prelude.sk
var Prelude string
