// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package collector connects to an MCP server over stdio and collects the
input schemas of every tool the server advertises.

# Basic Usage

Launch a server by command and collect its schemas:

	cl, err := collector.NewStdioClient("mcp-server-ecs", nil)
	if err != nil {
		return err
	}
	defer cl.Close()

	report, err := collector.New(nil).Collect(ctx, cl, "mcp-server-ecs")
	if err != nil {
		return err
	}
	err = report.WriteFile("mcp_schemas.json")

The collector initializes the MCP session, pages through tools/list with
cursors, and records each tool's name, description, and input schema. Tools
without a schema are kept in the report with a null inputSchema so that the
report always covers the full tool list.

# Testing

The Client interface is the seam between the collector and the mcp-go stdio
client. A generated mock is available in the mocks sub-package.
*/
package collector
