// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"

	catalog "github.com/charr-Chen/huawei-mcp-catalog/catalog/types"
)

// notAvailable marks fields the source table does not provide for a product.
const notAvailable = "N/A"

// groupSummary is the JSON shape of one --list-groups entry.
type groupSummary struct {
	Name     string `json:"name"`
	Products int    `json:"products"`
}

// productView is the JSON shape of a resolved product.
type productView struct {
	Group    string `json:"group"`
	Name     string `json:"name"`
	Short    string `json:"short"`
	RepoPath string `json:"repo_path,omitempty"`
	Command  string `json:"command,omitempty"`
}

func newProductView(p *catalog.Product) productView {
	return productView{
		Group:    p.Group,
		Name:     p.Name,
		Short:    p.Short,
		RepoPath: p.RepoPath,
		Command:  p.ServerCommand(),
	}
}

// renderGroups prints the distinct group names with product counts.
func renderGroups(w io.Writer, c *catalog.Catalog, asJSON bool) error {
	names := c.GroupNames()

	if asJSON {
		summaries := make([]groupSummary, 0, len(names))
		for _, name := range names {
			g, _ := c.GroupByName(name)
			summaries = append(summaries, groupSummary{Name: name, Products: len(g.Products)})
		}
		return writeJSON(w, summaries)
	}

	fmt.Fprintln(w, "Available groups:")
	for _, name := range names {
		g, _ := c.GroupByName(name)
		fmt.Fprintf(w, "- %s (%d)\n", name, len(g.Products))
	}
	return nil
}

// renderProducts prints the products of a group in source table order.
func renderProducts(w io.Writer, g *catalog.Group, asJSON bool) error {
	if asJSON {
		views := make([]productView, 0, len(g.Products))
		for _, p := range g.Products {
			views = append(views, newProductView(p))
		}
		return writeJSON(w, views)
	}

	fmt.Fprintf(w, "Group: %s\n", g.Name)
	for i, p := range g.Products {
		command := p.ServerCommand()
		if command == "" {
			command = notAvailable
		}
		fmt.Fprintf(w, "%02d. %s | short=%s | command=%s\n", i+1, p.Name, p.Short, command)
	}
	return nil
}

// renderProduct prints the metadata of a single resolved product.
func renderProduct(w io.Writer, p *catalog.Product, asJSON bool) error {
	if asJSON {
		return writeJSON(w, newProductView(p))
	}

	command := p.ServerCommand()
	if command == "" {
		command = notAvailable
	}
	repo := p.RepoPath
	if repo == "" {
		repo = notAvailable
	}

	fmt.Fprintf(w, "Group: %s\n", p.Group)
	fmt.Fprintf(w, "Product: %s\n", p.Name)
	fmt.Fprintf(w, "Short: %s\n", p.Short)
	fmt.Fprintf(w, "Repo: %s\n", repo)
	fmt.Fprintf(w, "Command: %s\n", command)
	return nil
}

// writeJSON writes indented JSON without HTML escaping, keeping CJK product
// names readable.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
