// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import "errors"

// Sentinel errors returned by catalog lookups. Callers match them with
// errors.Is to distinguish a missing row from an I/O or parse failure.
var (
	// ErrGroupNotFound is returned when a queried group name has no row
	// in the source table.
	ErrGroupNotFound = errors.New("group not found")

	// ErrProductNotFound is returned when a group exists but holds no
	// product matching the queried name or short identifier.
	ErrProductNotFound = errors.New("product not found")

	// ErrNoServerCommand is returned when schema collection is requested
	// for a product whose launch command cannot be inferred and no manual
	// command was supplied.
	ErrNoServerCommand = errors.New("no server launch command")
)
