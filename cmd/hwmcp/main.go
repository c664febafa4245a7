// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

// hwmcp is a command-line client for the Huawei Cloud MCP product catalog.
// It lists product groups, resolves products inside a group, and collects
// the API schemas of a product's MCP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
