// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package parser extracts the product catalog from the registry README.
//
// The upstream huaweicloud/mcp-server README is a markdown document with an
// embedded HTML <table>. Group cells span multiple rows via rowspan, so a
// three-cell row opens a new group and subsequent two-cell rows inherit it.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	catalog "github.com/charr-Chen/huawei-mcp-catalog/catalog/types"
)

// ErrNoTable is returned when the source document contains no product table.
var ErrNoTable = errors.New("no product table found in source document")

// repoTreeMarker is the substring of anchor hrefs that precedes a product's
// repository path inside the upstream monorepo.
const repoTreeMarker = "mcp-server/tree/master-dev/"

// Parse reads a registry document and returns the catalog built from its
// first HTML table. Rows that are neither group-opening (three cells) nor
// group-continuation (two cells) are skipped.
func Parse(r io.Reader) (*catalog.Catalog, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source document: %w", err)
	}

	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, ErrNoTable
	}

	c := catalog.New()
	currentGroup := ""

	for _, row := range findAll(table, atom.Tr) {
		cells := findAll(row, atom.Td)
		texts := make([]string, 0, len(cells))
		for _, cell := range cells {
			texts = append(texts, cellText(cell))
		}

		var product *catalog.Product
		switch len(texts) {
		case 3:
			currentGroup = texts[0]
			product = &catalog.Product{Group: currentGroup, Name: texts[1], Short: texts[2]}
		case 2:
			product = &catalog.Product{Group: currentGroup, Name: texts[0], Short: texts[1]}
		default:
			// Header rows (th cells) and spacer rows end up here.
			continue
		}

		product.RepoPath = repoPath(row)
		c.Add(product)
	}

	return c, nil
}

// repoPath returns the monorepo path linked from the row, if any.
func repoPath(row *html.Node) string {
	for _, a := range findAll(row, atom.A) {
		for _, attr := range a.Attr {
			if attr.Key != "href" {
				continue
			}
			if _, after, found := strings.Cut(attr.Val, repoTreeMarker); found {
				return after
			}
		}
	}
	return ""
}

// cellText returns the cell's text content with nested markup stripped and
// whitespace collapsed.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// findFirst returns the first descendant element with the given atom,
// depth-first.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, a); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns all descendant elements with the given atom, depth-first.
// Matched elements are not descended into, which keeps nested tables out of
// the outer table's row list.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return out
}
