// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package collector

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks Client

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Client is the subset of the MCP client surface the collector needs.
// The mcp-go stdio client satisfies it; tests substitute the generated mock.
type Client interface {
	Initialize(ctx context.Context, request mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListTools(ctx context.Context, request mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	Close() error
}

var _ Client = (*client.Client)(nil)

// NewStdioClient launches the MCP server with the given command and returns
// a client connected to it over stdio. The server process lives until Close.
func NewStdioClient(command string, extraEnv []string, args ...string) (Client, error) {
	c, err := client.NewStdioMCPClient(command, extraEnv, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to launch MCP server %q: %w", command, err)
	}
	return c, nil
}
