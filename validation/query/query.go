// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package query provides validation functions for group and product query
// terms.
package query

import (
	"fmt"
	"strings"
	"unicode"
)

// maxTermLength bounds query terms to prevent pathological input.
const maxTermLength = 256

// ValidateTerm validates a group or product query term. Terms come from the
// source table's cells, which may contain any printable text including CJK,
// so character classes are not restricted. It enforces no null bytes, no
// control characters, no leading/trailing whitespace, and no consecutive
// spaces.
func ValidateTerm(kind, term string) error {
	if term == "" || strings.TrimSpace(term) == "" {
		return fmt.Errorf("%s name cannot be empty or consist only of whitespace", kind)
	}

	if len(term) > maxTermLength {
		return fmt.Errorf("%s name exceeds maximum length of %d bytes", kind, maxTermLength)
	}

	// Check for null bytes explicitly
	if strings.Contains(term, "\x00") {
		return fmt.Errorf("%s name cannot contain null bytes", kind)
	}

	for _, r := range term {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s name cannot contain control characters: %q", kind, term)
		}
	}

	// Check for leading/trailing whitespace
	if strings.TrimSpace(term) != term {
		return fmt.Errorf("%s name cannot have leading or trailing whitespace: %q", kind, term)
	}

	// Check for consecutive spaces
	if strings.Contains(term, "  ") {
		return fmt.Errorf("%s name cannot contain consecutive spaces: %q", kind, term)
	}

	return nil
}

// ValidateGroupName validates a group query term.
func ValidateGroupName(name string) error {
	return ValidateTerm("group", name)
}

// ValidateProductName validates a product query term.
func ValidateProductName(name string) error {
	return ValidateTerm("product", name)
}
