/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcriveros/devaci/pkg/mit"
)

func TestBuildNodeP(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"infraNodeP": []any{
			map[string]any{
				"name": "leaf101",
				"infraLeafS": []any{
					map[string]any{
						"name": "sel101",
						"type": "range",
						"infraNodeBlk": map[string]any{
							"name":  "blk",
							"from_": "101",
							"to_":   "101",
						},
						"infraRsAccNodePGrp": map[string]any{
							"tDn": "uni/infra/funcprof/accnodepgrp-leaf-pgrp",
						},
					},
				},
				"infraRsAccPortP": []any{
					map[string]any{"tDn": "uni/infra/accportprof-leaf101-ifp"},
					map[string]any{"tDn": ""},
				},
			},
		},
	})
	require.True(t, ok)

	np := findChild(t, req.Infra(), "infraNodeP", "leaf101")
	sel := findChild(t, np, "infraLeafS", "sel101")
	assert.Equal(t, "range", sel.Attr("type"))
	blk := findChild(t, sel, "infraNodeBlk", "blk")
	assert.Equal(t, "101", blk.Attr("from"))
	assert.Equal(t, 1, countClass(np, "infraRsAccPortP"))
}

func TestBuildAccPortGrp(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"infraAccPortGrp": []any{
			map[string]any{
				"name": "server-pg",
				"infraRsHIfPol": map[string]any{
					"tnFabricHIfPolName": "10G",
				},
				"infraRsCdpIfPol": map[string]any{
					"tnCdpIfPolName": "cdp-on",
				},
				// An empty policy name cell means no relation object.
				"infraRsLldpIfPol": map[string]any{
					"tnLldpIfPolName": "",
				},
				// An absent policy name is fine, defaults apply.
				"infraRsStpIfPol": map[string]any{
					"annotation": "orchestrated",
				},
			},
		},
	})
	require.True(t, ok)

	grp := findChild(t, req.FuncP(), "infraAccPortGrp", "server-pg")
	assert.Equal(t, 1, countClass(grp, "infraRsHIfPol"))
	assert.Equal(t, 1, countClass(grp, "infraRsCdpIfPol"))
	assert.Equal(t, 0, countClass(grp, "infraRsLldpIfPol"))
	assert.Equal(t, 1, countClass(grp, "infraRsStpIfPol"))
}

func TestBuildAccBndlGrp(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"infraAccBndlGrp": []any{
			map[string]any{
				"name": "vpc-pg",
				"lagT": "node",
				"infraRsLacpPol": map[string]any{
					"tnLacpLagPolName": "lacp-active",
				},
				"infraRsAttEntP": map[string]any{
					"tDn": "uni/infra/attentp-servers",
				},
			},
		},
	})
	require.True(t, ok)

	grp := findChild(t, req.FuncP(), "infraAccBndlGrp", "vpc-pg")
	assert.Equal(t, "node", grp.Attr("lagT"))
	lacp := findChild(t, grp, "infraRsLacpPol", "")
	assert.Equal(t, "lacp-active", lacp.Attr("tnLacpLagPolName"))
	assert.Equal(t, 1, countClass(grp, "infraRsAttEntP"))
}

func TestBuildAccPortP(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"infraAccPortP": []any{
			map[string]any{
				"name": "leaf101-ifp",
				"infraHPortS": []any{
					map[string]any{
						"name": "eth1-1",
						"type": "range",
						"infraRsAccBaseGrp": map[string]any{
							"tDn": "uni/infra/funcprof/accportgrp-server-pg",
						},
						"infraPortBlk": []any{
							map[string]any{"name": "blk1", "fromPort": "1", "toPort": "1"},
							map[string]any{"name": "blk2", "fromPort": ""},
						},
					},
				},
			},
		},
	})
	require.True(t, ok)

	pp := findChild(t, req.Infra(), "infraAccPortP", "leaf101-ifp")
	sel := findChild(t, pp, "infraHPortS", "eth1-1")
	assert.Equal(t, 1, countClass(sel, "infraRsAccBaseGrp"))
	assert.Equal(t, 1, countClass(sel, "infraPortBlk"))
}

func TestFlatInterfacePolicies(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"cdpIfPol": []any{
			map[string]any{"name": "cdp-on", "adminSt": "enabled"},
			map[string]any{"name": "cdp-off", "adminSt": "disabled"},
		},
		"fabricHIfPol": map[string]any{
			"name": "10G", "speed": "10G", "autoNeg": "on",
		},
		"lacpLagPol": []any{
			map[string]any{"name": "lacp-active", "mode": "active"},
		},
	})
	require.True(t, ok)

	assert.Equal(t, 2, countClass(req.Infra(), "cdpIfPol"))
	hif := findChild(t, req.Infra(), "fabricHIfPol", "10G")
	assert.Equal(t, "10G", hif.Attr("speed"))
	assert.Equal(t, 1, countClass(req.Infra(), "lacpLagPol"))
}

func TestBuildDomains(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"physDomP": []any{
			map[string]any{
				"name": "phys-dom",
				"infraRsVlanNs": map[string]any{
					"tDn": "uni/infra/vlanns-[servers]-static",
				},
			},
		},
		"fvnsVlanInstP": []any{
			map[string]any{
				"name":      "servers",
				"allocMode": "static",
				"fvnsEncapBlk": []any{
					map[string]any{"from": "vlan-100", "to": "vlan-199"},
				},
			},
		},
		"infraAttEntityP": []any{
			map[string]any{
				"name": "servers-aep",
				"infraRsDomP": []any{
					map[string]any{"tDn": "uni/phys-phys-dom"},
				},
			},
		},
	})
	require.True(t, ok)

	dom := findChild(t, req.Uni(), "physDomP", "phys-dom")
	assert.Equal(t, 1, countClass(dom, "infraRsVlanNs"))

	pool := findChild(t, req.Infra(), "fvnsVlanInstP", "servers")
	blk := findChild(t, pool, "fvnsEncapBlk", "")
	assert.Equal(t, "vlan-100", blk.Attr("from"))

	aep := findChild(t, req.Infra(), "infraAttEntityP", "servers-aep")
	assert.Equal(t, 1, countClass(aep, "infraRsDomP"))
}
