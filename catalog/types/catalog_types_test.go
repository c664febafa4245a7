// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testCatalog() *Catalog {
	c := New()
	c.Add(&Product{Group: "计算", Name: "弹性云服务器", Short: "ECS", RepoPath: "mcp_server/servers/mcp_server_ecs"})
	c.Add(&Product{Group: "计算", Name: "函数工作流", Short: "FunctionGraph", RepoPath: "mcp_server/servers/mcp_server_functiongraph"})
	c.Add(&Product{Group: "存储", Name: "对象存储服务", Short: "OBS", RepoPath: "mcp_server/servers/mcp_server_obs"})
	c.Add(&Product{Group: "存储", Name: "云备份", Short: "CBR"})
	return c
}

func TestCatalog_GroupNames(t *testing.T) {
	t.Parallel()
	c := testCatalog()

	names := c.GroupNames()
	require.Len(t, names, 2)

	// Sorted, each group exactly once even with multiple products.
	seen := make(map[string]int)
	for _, n := range names {
		seen[n]++
	}
	assert.Equal(t, 1, seen["计算"])
	assert.Equal(t, 1, seen["存储"])
}

func TestCatalog_GroupByName(t *testing.T) {
	t.Parallel()
	c := testCatalog()

	g, ok := c.GroupByName("计算")
	require.True(t, ok)
	assert.Equal(t, []string{"弹性云服务器", "函数工作流"}, g.ProductNames())

	_, ok = c.GroupByName("不存在")
	assert.False(t, ok)
}

func TestCatalog_FindProduct(t *testing.T) {
	t.Parallel()
	c := testCatalog()

	tests := []struct {
		name      string
		group     string
		product   string
		wantShort string
		wantErr   error
	}{
		{"exact name match", "计算", "弹性云服务器", "ECS", nil},
		{"short match", "计算", "ECS", "ECS", nil},
		{"short match is case-insensitive", "存储", "obs", "OBS", nil},
		{"unknown product", "计算", "裸金属服务器", "", ErrProductNotFound},
		{"unknown group", "网络", "ECS", "", ErrGroupNotFound},
		{"product in wrong group", "存储", "ECS", "", ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := c.FindProduct(tt.group, tt.product)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantShort, p.Short)
		})
	}
}

func TestCatalog_Add_Ungrouped(t *testing.T) {
	t.Parallel()
	c := New()
	c.Add(&Product{Name: "孤儿产品", Short: "ORPHAN"})

	g, ok := c.GroupByName(UngroupedName)
	require.True(t, ok)
	require.Len(t, g.Products, 1)
	assert.Equal(t, UngroupedName, g.Products[0].Group)
}

func TestProduct_ServerCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		repoPath string
		want     string
	}{
		{"standard server directory", "mcp_server/servers/mcp_server_ecs", "mcp-server-ecs"},
		{"multi-word suffix", "mcp_server/servers/mcp_server_css_flavors", "mcp-server-css_flavors"},
		{"no repo path", "", ""},
		{"directory without prefix", "mcp_server/servers/tools_common", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &Product{RepoPath: tt.repoPath}
			assert.Equal(t, tt.want, p.ServerCommand())
		})
	}
}

func TestProduct_RepositoryURL(t *testing.T) {
	t.Parallel()

	p := &Product{RepoPath: "mcp_server/servers/mcp_server_ecs"}
	assert.Equal(t,
		"https://github.com/huaweicloud/mcp-server/tree/master-dev/mcp_server/servers/mcp_server_ecs",
		p.RepositoryURL())

	assert.Empty(t, (&Product{}).RepositoryURL())
}

func TestCatalog_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	c := testCatalog()
	c.Source = "README_zh.md"

	data, err := json.MarshalIndent(c, "", "  ")
	require.NoError(t, err)

	var decoded Catalog
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c.Version, decoded.Version)
	assert.Equal(t, c.Source, decoded.Source)
	assert.Equal(t, c.ProductCount(), decoded.ProductCount())
}

func TestCatalog_YAMLRoundTrip(t *testing.T) {
	t.Parallel()
	c := testCatalog()

	data, err := yaml.Marshal(c)
	require.NoError(t, err)

	var decoded Catalog
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, c.GroupNames(), decoded.GroupNames())
}
