// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/charr-Chen/huawei-mcp-catalog/logging"
)

const (
	clientName    = "hwmcp"
	clientVersion = "1.0.0"
)

// Collector gathers tool schemas from a connected MCP server.
type Collector struct {
	logger *slog.Logger
}

// New returns a Collector. A nil logger falls back to the default
// logging configuration.
func New(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = logging.New()
	}
	return &Collector{logger: logger}
}

// Collect initializes the MCP session and collects the input schema of every
// advertised tool. The serverCommand is recorded in the report for
// traceability only; the client is already connected.
func (c *Collector) Collect(ctx context.Context, cl Client, serverCommand string) (*Report, error) {
	initResult, err := cl.Initialize(ctx, newInitializeRequest())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}
	c.logger.Info("MCP session initialized",
		"server", initResult.ServerInfo.Name,
		"version", initResult.ServerInfo.Version,
		"protocol", initResult.ProtocolVersion)

	report := &Report{
		ServerCommand: serverCommand,
		CollectedAt:   time.Now().UTC().Format(time.RFC3339),
		Tools:         make(map[string]ToolSchema),
	}

	var cursor mcp.Cursor
	for {
		req := mcp.ListToolsRequest{}
		req.Params.Cursor = cursor

		page, err := cl.ListTools(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list tools: %w", err)
		}

		for i := range page.Tools {
			tool := &page.Tools[i]
			schema, err := rawInputSchema(tool)
			if err != nil {
				return nil, fmt.Errorf("failed to serialize input schema of tool %q: %w", tool.Name, err)
			}
			report.Tools[tool.Name] = ToolSchema{
				Description: tool.Description,
				InputSchema: schema,
			}
			c.logger.Debug("collected tool", "tool", tool.Name, "has_schema", schema != nil)
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	c.logger.Info("schema collection finished",
		"tools", report.ToolCount(),
		"with_schema", report.WithSchema(),
		"without_schema", report.WithoutSchema())
	return report, nil
}

// rawInputSchema returns the tool's input schema as raw JSON, or nil when
// the server declared no schema for the tool.
func rawInputSchema(tool *mcp.Tool) (json.RawMessage, error) {
	if len(tool.RawInputSchema) > 0 {
		return tool.RawInputSchema, nil
	}
	if tool.InputSchema.Type == "" && len(tool.InputSchema.Properties) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func newInitializeRequest() mcp.InitializeRequest {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    clientName,
		Version: clientVersion,
	}
	req.Params.Capabilities = mcp.ClientCapabilities{}
	return req
}
