// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/charr-Chen/huawei-mcp-catalog/catalog/types"
)

const sampleReadme = `# 华为云 MCP Server

产品列表如下：

<table>
  <tr>
    <th>分组</th>
    <th>产品名称</th>
    <th>产品简称</th>
  </tr>
  <tr>
    <td rowspan="2">计算</td>
    <td><a href="https://github.com/huaweicloud/mcp-server/tree/master-dev/mcp_server/servers/mcp_server_ecs">弹性云服务器</a></td>
    <td>ECS</td>
  </tr>
  <tr>
    <td><a href="https://github.com/huaweicloud/mcp-server/tree/master-dev/mcp_server/servers/mcp_server_functiongraph">函数工作流</a></td>
    <td>FunctionGraph</td>
  </tr>
  <tr>
    <td rowspan="1">存储</td>
    <td>对象存储服务</td>
    <td>OBS</td>
  </tr>
  <tr>
    <td>spacer-row-with-one-cell</td>
  </tr>
</table>

更多内容见文档。
`

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := Parse(strings.NewReader(sampleReadme))
	require.NoError(t, err)

	assert.Equal(t, []string{"存储", "计算"}, c.GroupNames())
	assert.Equal(t, 3, c.ProductCount())

	compute, ok := c.GroupByName("计算")
	require.True(t, ok)
	assert.Equal(t, []string{"弹性云服务器", "函数工作流"}, compute.ProductNames())

	// Repo path comes from the row's anchor, markup inside the cell is stripped.
	p, err := c.FindProduct("计算", "ECS")
	require.NoError(t, err)
	assert.Equal(t, "弹性云服务器", p.Name)
	assert.Equal(t, "mcp_server/servers/mcp_server_ecs", p.RepoPath)
	assert.Equal(t, "mcp-server-ecs", p.ServerCommand())

	// Rows without a linked repository keep an empty path.
	p, err = c.FindProduct("存储", "OBS")
	require.NoError(t, err)
	assert.Empty(t, p.RepoPath)
	assert.Empty(t, p.ServerCommand())
}

func TestParse_ContinuationRowBeforeAnyGroup(t *testing.T) {
	t.Parallel()

	const doc = `<table>
		<tr><td>早到的产品</td><td>EARLY</td></tr>
		<tr><td rowspan="1">计算</td><td>弹性云服务器</td><td>ECS</td></tr>
	</table>`

	c, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	g, ok := c.GroupByName(catalog.UngroupedName)
	require.True(t, ok)
	assert.Equal(t, []string{"早到的产品"}, g.ProductNames())
}

func TestParse_NoTable(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("# README\n\nno table here\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoTable))
}

func TestParse_OnlyFirstTableIsUsed(t *testing.T) {
	t.Parallel()

	const doc = `
<table>
  <tr><td rowspan="1">计算</td><td>弹性云服务器</td><td>ECS</td></tr>
</table>
<table>
  <tr><td rowspan="1">其他</td><td>不该出现</td><td>NOPE</td></tr>
</table>`

	c, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"计算"}, c.GroupNames())

	_, ok := c.GroupByName("其他")
	assert.False(t, ok)
}
