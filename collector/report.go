// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package collector

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/schema-report.schema.json
var embeddedSchemaFS embed.FS

// ToolSchema is the collected schema of a single tool.
type ToolSchema struct {
	// Description is the tool description as reported by the server
	Description string `json:"description"`
	// InputSchema is the tool's input schema verbatim, or null when the
	// server declared none
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Report is the result of one schema collection run against an MCP server.
type Report struct {
	// ServerCommand is the command the server was launched with
	ServerCommand string `json:"server_command"`
	// CollectedAt is the collection timestamp in RFC3339 format
	CollectedAt string `json:"collected_at"`
	// Tools maps tool names to their collected schemas
	Tools map[string]ToolSchema `json:"tools"`
}

// ToolCount returns the number of tools in the report.
func (r *Report) ToolCount() int {
	if r == nil {
		return 0
	}
	return len(r.Tools)
}

// WithSchema returns the number of tools that declared an input schema.
func (r *Report) WithSchema() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, t := range r.Tools {
		if len(t.InputSchema) > 0 && string(t.InputSchema) != "null" {
			n++
		}
	}
	return n
}

// WithoutSchema returns the number of tools without an input schema.
func (r *Report) WithoutSchema() int {
	return r.ToolCount() - r.WithSchema()
}

// MarshalIndent serializes the report as indented JSON. HTML escaping is
// disabled so that non-ASCII descriptions stay readable in the output file.
func (r *Report) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes the report as indented JSON to the given path.
func (r *Report) WriteFile(path string) error {
	data, err := r.MarshalIndent()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Validate validates the report against the schema report JSON schema.
func (r *Report) Validate() error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	return ValidateReportBytes(data)
}

// ValidateReportBytes validates raw report JSON bytes against the schema
// report JSON schema.
func ValidateReportBytes(reportData []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile("data/schema-report.schema.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(reportData),
	)
	if err != nil {
		return fmt.Errorf("report schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msg := "report schema validation failed"
	for _, desc := range result.Errors() {
		msg += ": " + desc.String()
	}
	return fmt.Errorf("%s", msg)
}
