// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Validate(t *testing.T) {
	t.Parallel()
	c := testCatalog()
	c.Source = "README_zh.md"

	require.NoError(t, c.Validate())
}

func TestValidateCatalogBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid snapshot",
			data: `{
				"version": "1.0",
				"groups": [
					{"name": "计算", "products": [
						{"group": "计算", "name": "弹性云服务器", "short": "ECS"}
					]}
				]
			}`,
			wantErr: false,
		},
		{
			name:    "missing version",
			data:    `{"groups": []}`,
			wantErr: true,
		},
		{
			name: "product missing name",
			data: `{
				"version": "1.0",
				"groups": [
					{"name": "计算", "products": [{"group": "计算", "short": "ECS"}]}
				]
			}`,
			wantErr: true,
		},
		{
			name: "unknown field rejected",
			data: `{"version": "1.0", "groups": [], "extra": true}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateCatalogBytes([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
