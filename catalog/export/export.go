// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package export converts the product catalog into the upstream MCP
// (Model Context Protocol) ServerJSON registry format.
//
// Catalog-specific fields (group, short identifier) are stored in the
// upstream format's publisher extensions under "com.huaweicloud", allowing
// additional metadata while maintaining compatibility with the standard MCP
// registry format.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	upstream "github.com/modelcontextprotocol/registry/pkg/api/v0"
	"github.com/modelcontextprotocol/registry/pkg/model"

	catalog "github.com/charr-Chen/huawei-mcp-catalog/catalog/types"
)

// PublisherNamespace is the reverse-DNS namespace for exported servers and
// their publisher extensions.
const PublisherNamespace = "com.huaweicloud"

// exportVersion is the version stamped on exported server entries. The
// upstream table carries no per-product version information.
const exportVersion = "1.0.0"

// ServerList is the document written by WriteFile.
type ServerList struct {
	Servers []upstream.ServerJSON `json:"servers"`
}

// ProductToServerJSON converts a catalog product to an upstream ServerJSON.
// Products without a short identifier cannot be named in reverse-DNS form
// and are rejected.
func ProductToServerJSON(p *catalog.Product) (*upstream.ServerJSON, error) {
	if p == nil {
		return nil, fmt.Errorf("product cannot be nil")
	}
	if p.Short == "" {
		return nil, fmt.Errorf("product %q has no short identifier", p.Name)
	}

	serverJSON := &upstream.ServerJSON{
		Schema:      model.CurrentSchemaURL,
		Name:        BuildReverseDNSName(p.Short),
		Title:       p.Name,
		Description: fmt.Sprintf("Huawei Cloud %s (%s) MCP server", p.Name, p.Short),
		Version:     exportVersion,
	}

	if url := p.RepositoryURL(); url != "" {
		serverJSON.Repository = &model.Repository{
			URL:    url,
			Source: "github",
		}
	}

	// Servers in the upstream monorepo are published as PyPI packages whose
	// executable name matches the inferred launch command.
	if cmd := p.ServerCommand(); cmd != "" {
		serverJSON.Packages = []model.Package{{
			RegistryType: model.RegistryTypePyPI,
			Identifier:   cmd,
			Version:      exportVersion,
			Transport: model.Transport{
				Type: model.TransportTypeStdio,
			},
		}}
	}

	serverJSON.Meta = &upstream.ServerMeta{
		PublisherProvided: map[string]interface{}{
			PublisherNamespace: map[string]interface{}{
				"group": p.Group,
				"short": p.Short,
			},
		},
	}

	return serverJSON, nil
}

// CatalogToServerList converts every product in the catalog. Products
// without a short identifier are skipped rather than failing the export.
func CatalogToServerList(c *catalog.Catalog) (*ServerList, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}

	list := &ServerList{Servers: make([]upstream.ServerJSON, 0, c.ProductCount())}
	for _, g := range c.Groups {
		for _, p := range g.Products {
			if p == nil || p.Short == "" {
				continue
			}
			serverJSON, err := ProductToServerJSON(p)
			if err != nil {
				return nil, fmt.Errorf("failed to convert product %q: %w", p.Name, err)
			}
			list.Servers = append(list.Servers, *serverJSON)
		}
	}
	return list, nil
}

// WriteFile exports the catalog as an upstream server list JSON document.
func WriteFile(path string, c *catalog.Catalog) error {
	list, err := CatalogToServerList(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("failed to serialize server list: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write server list: %w", err)
	}
	return nil
}

// ExtractServerName extracts the simple server name from a reverse-DNS format name
// Example: "com.huaweicloud/ecs" -> "ecs"
func ExtractServerName(reverseDNSName string) string {
	parts := strings.Split(reverseDNSName, "/")
	if len(parts) == 2 {
		return parts[1]
	}
	return reverseDNSName
}

// BuildReverseDNSName builds a reverse-DNS format name from a short identifier
// Example: "ECS" -> "com.huaweicloud/ecs"
func BuildReverseDNSName(short string) string {
	if strings.Contains(short, "/") {
		return short // Already in reverse-DNS format
	}
	return PublisherNamespace + "/" + strings.ToLower(short)
}
