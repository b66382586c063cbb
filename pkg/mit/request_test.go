/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package mit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRequestContainers(t *testing.T) {
	t.Parallel()

	req := NewConfigRequest()
	assert.True(t, req.Empty())

	infra := req.Infra()
	assert.Same(t, infra, req.Infra())
	assert.Same(t, req.FuncP(), req.FuncP())
	assert.False(t, req.Empty())

	// FuncP nests under infra, not uni.
	assert.Len(t, infra.Children, 1)
	assert.Equal(t, ClassFuncP, infra.Children[0].Class)

	req.FabricInst()
	req.CtrlrInst()
	req.UserEp()
	assert.Len(t, req.Uni().Children, 4)
}

func TestConfigRequestTenant(t *testing.T) {
	t.Parallel()

	req := NewConfigRequest()
	prod := req.Tenant("prod")
	prod.Add(New("fvBD", map[string]string{"name": "bd1"}))

	// Second builder touching the same tenant merges into it.
	again := req.Tenant("prod")
	again.Add(New("fvCtx", map[string]string{"name": "vrf1"}))

	assert.Same(t, prod, again)
	assert.Len(t, req.Uni().Children, 1)
	assert.Equal(t, 3, req.Count())
}

func TestConfigRequestData(t *testing.T) {
	t.Parallel()

	req := NewConfigRequest()
	req.Tenant("prod")

	data, err := req.Data()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"polUni": {
			"attributes": {},
			"children": [
				{"fvTenant": {"attributes": {"name": "prod"}}}
			]
		}
	}`, string(data))

	xmlData, err := req.XMLData()
	require.NoError(t, err)
	assert.Equal(t, `<polUni><fvTenant name="prod"></fvTenant></polUni>`, string(xmlData))

	payload, err := req.Payload()
	require.NoError(t, err)
	assert.Contains(t, payload, "polUni")
}
