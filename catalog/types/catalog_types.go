// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog contains the core type definitions for the Huawei Cloud
// MCP product catalog.
package catalog

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Updates to the catalog shape should be reflected in the JSON schema file
// located at catalog/types/data/catalog.schema.json.
// The schema is used for validation and documentation purposes.

const (
	// UngroupedName is the group assigned to products whose table rows
	// appear before any group cell.
	UngroupedName = "ungrouped"

	// RepoTreeBaseURL is the base URL for product repository paths in the
	// upstream huaweicloud/mcp-server monorepo.
	RepoTreeBaseURL = "https://github.com/huaweicloud/mcp-server/tree/master-dev/"

	// repoDirPrefix is the directory naming convention for server
	// implementations inside the monorepo.
	repoDirPrefix = "mcp_server_"

	// commandPrefix is the published executable naming convention for the
	// same servers.
	commandPrefix = "mcp-server-"
)

// Product represents a single cloud service entry in the catalog.
type Product struct {
	// Group is the top-level category the product belongs to (e.g., "计算")
	Group string `json:"group" yaml:"group"`
	// Name is the full human-readable product name
	Name string `json:"name" yaml:"name"`
	// Short is the abbreviated product identifier (e.g., "ECS")
	Short string `json:"short" yaml:"short"`
	// RepoPath is the product's directory path inside the upstream
	// monorepo, when the source table links one
	RepoPath string `json:"repo_path,omitempty" yaml:"repo_path,omitempty"`
}

// Group represents a category of products, in source table order.
type Group struct {
	// Name is the identifier for the group, used when referencing the group in queries
	Name string `json:"name" yaml:"name"`
	// Products are the group's entries in source table order
	Products []*Product `json:"products" yaml:"products"`
}

// Catalog is the top-level structure of the product registry.
type Catalog struct {
	// Version is the schema version of the catalog snapshot
	Version string `json:"version" yaml:"version"`
	// Source records where the catalog was loaded from (path or URL)
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Groups holds all product groups in source table order
	Groups []*Group `json:"groups" yaml:"groups"`
}

// CurrentVersion is the catalog snapshot schema version written by this build.
const CurrentVersion = "1.0"

// New returns an empty catalog at the current snapshot version.
func New() *Catalog {
	return &Catalog{Version: CurrentVersion}
}

// Add appends a product to its group, creating the group on first use.
// Products with an empty group are filed under UngroupedName.
func (c *Catalog) Add(p *Product) {
	if p == nil {
		return
	}
	if p.Group == "" {
		p.Group = UngroupedName
	}
	for _, g := range c.Groups {
		if g.Name == p.Group {
			g.Products = append(g.Products, p)
			return
		}
	}
	c.Groups = append(c.Groups, &Group{Name: p.Group, Products: []*Product{p}})
}

// GroupNames returns the distinct group names, sorted. Each name appears
// exactly once regardless of how many products the group holds.
func (c *Catalog) GroupNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}

// GroupByName returns a group by name.
func (c *Catalog) GroupByName(name string) (*Group, bool) {
	if c == nil {
		return nil, false
	}
	for _, g := range c.Groups {
		if g != nil && g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// FindProduct resolves a product inside a group. The product argument
// matches either the full product name exactly or the short identifier
// case-insensitively.
func (c *Catalog) FindProduct(group, product string) (*Product, error) {
	g, ok := c.GroupByName(group)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	for _, p := range g.Products {
		if p == nil {
			continue
		}
		if p.Name == product || strings.EqualFold(p.Short, product) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in group %s", ErrProductNotFound, product, group)
}

// ProductCount returns the total number of products across all groups.
func (c *Catalog) ProductCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, g := range c.Groups {
		n += len(g.Products)
	}
	return n
}

// ProductNames returns the product names of the group in table order.
func (g *Group) ProductNames() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.Products))
	for _, p := range g.Products {
		names = append(names, p.Name)
	}
	return names
}

// ServerCommand infers the launch command for the product's MCP server from
// its repository path. Directories named mcp_server_<x> publish an executable
// named mcp-server-<x>. Returns "" when no command can be inferred.
func (p *Product) ServerCommand() string {
	if p == nil || p.RepoPath == "" {
		return ""
	}
	dir := path.Base(p.RepoPath)
	if !strings.HasPrefix(dir, repoDirPrefix) {
		return ""
	}
	return commandPrefix + strings.TrimPrefix(dir, repoDirPrefix)
}

// RepositoryURL returns the product's upstream repository URL, or "" when
// the source table did not link one.
func (p *Product) RepositoryURL() string {
	if p == nil || p.RepoPath == "" {
		return ""
	}
	return RepoTreeBaseURL + p.RepoPath
}
