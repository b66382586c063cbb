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

func TestBuildSnmpPol(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"snmpPol": []any{
			map[string]any{
				"name":    "default",
				"adminSt": "enabled",
				"snmpClientGrpP": []any{
					map[string]any{
						"name": "mgmt-clients",
						"snmpRsEpg": map[string]any{
							"tDn": "uni/tn-mgmt/mgmtp-default/oob-default",
						},
						"snmpClientP": []any{
							map[string]any{"name": "nms", "addr": "10.1.1.10"},
							map[string]any{"name": "bad", "addr": ""},
						},
					},
				},
				"snmpCommunityP": []any{
					map[string]any{"name": "public"},
				},
			},
		},
	})
	require.True(t, ok)

	pol := findChild(t, req.FabricInst(), "snmpPol", "default")
	grp := findChild(t, pol, "snmpClientGrpP", "mgmt-clients")
	assert.Equal(t, 1, countClass(grp, "snmpRsEpg"))
	assert.Equal(t, 1, countClass(grp, "snmpClientP"))
	assert.Equal(t, 1, countClass(pol, "snmpCommunityP"))
}

func TestBuildDatetimePol(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"datetimePol": []any{
			map[string]any{
				"name": "default",
				"datetimeNtpAuthKey": []any{
					map[string]any{"id": "1", "key": "secret", "trusted": "yes", "keyType": "md5"},
					map[string]any{"id": "2"},
				},
				"datetimeNtpProv": []any{
					map[string]any{
						"name":      "10.0.0.1",
						"preferred": "yes",
						"datetimeRsNtpProvToNtpAuthKey": map[string]any{
							"tnDatetimeNtpAuthKeyId": "1",
						},
						"datetimeRsNtpProvToEpg": map[string]any{
							"tDn": "uni/tn-mgmt/mgmtp-default/oob-default",
						},
					},
				},
			},
		},
	})
	require.True(t, ok)

	pol := findChild(t, req.FabricInst(), "datetimePol", "default")
	assert.Equal(t, 1, countClass(pol, "datetimeNtpAuthKey"))
	prov := findChild(t, pol, "datetimeNtpProv", "10.0.0.1")
	assert.Equal(t, "yes", prov.Attr("preferred"))
	assert.Equal(t, 1, countClass(prov, "datetimeRsNtpProvToNtpAuthKey"))
	assert.Equal(t, 1, countClass(prov, "datetimeRsNtpProvToEpg"))
}

func TestBuildProtPol(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"fabricProtPol": []any{
			map[string]any{
				"pairT": "explicit",
				"fabricExplicitGEp": []any{
					map[string]any{
						"name": "vpc-101-102",
						"id":   "10",
						"fabricRsVpcInstPol": map[string]any{
							"tnVpcInstPolName": "default",
						},
						"fabricNodePEp": []any{
							map[string]any{"id": "101"},
							map[string]any{"id": "102"},
						},
					},
				},
			},
		},
	})
	require.True(t, ok)

	pol := findChild(t, req.FabricInst(), "fabricProtPol", "")
	gep := findChild(t, pol, "fabricExplicitGEp", "vpc-101-102")
	assert.Equal(t, "10", gep.Attr("id"))
	assert.Equal(t, 2, countClass(gep, "fabricNodePEp"))
}

func TestBuildPodSetup(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"fabricSetupP": []any{
			map[string]any{"podId": "1", "tepPool": "10.0.0.0/16"},
		},
		"fabricNodeIdentPol": []any{
			map[string]any{
				"fabricNodeIdentP": []any{
					map[string]any{"serial": "FDO1234", "nodeId": "101", "name": "leaf101"},
				},
			},
		},
		"fabricRsOosPath": []any{
			map[string]any{"tDn": "topology/pod-1/paths-101/pathep-[eth1/40]", "lc": "blacklist"},
		},
	})
	require.True(t, ok)

	setupPol := findChild(t, req.CtrlrInst(), "fabricSetupPol", "")
	assert.Equal(t, 1, countClass(setupPol, "fabricSetupP"))

	identPol := findChild(t, req.CtrlrInst(), "fabricNodeIdentPol", "")
	ident := findChild(t, identPol, "fabricNodeIdentP", "leaf101")
	assert.Equal(t, "101", ident.Attr("nodeId"))

	oos := findChild(t, req.FabricInst(), "fabricOOServicePol", "")
	assert.Equal(t, 1, countClass(oos, "fabricRsOosPath"))
}

func TestBuildGeoSite(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"geoSite": []any{
			map[string]any{
				"name": "dc1",
				"geoBuilding": []any{
					map[string]any{
						"name": "b1",
						"geoFloor": []any{
							map[string]any{
								"name": "f1",
								"geoRoom": []any{
									map[string]any{
										"name": "r1",
										"geoRow": []any{
											map[string]any{
												"name": "row1",
												"geoRack": []any{
													map[string]any{
														"name": "rack1",
														"geoRsNodeLocation": []any{
															map[string]any{"tDn": "topology/pod-1/node-101"},
														},
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	})
	require.True(t, ok)

	site := findChild(t, req.FabricInst(), "geoSite", "dc1")
	rack := findChild(t,
		findChild(t,
			findChild(t,
				findChild(t,
					findChild(t, site, "geoBuilding", "b1"),
					"geoFloor", "f1"),
				"geoRoom", "r1"),
			"geoRow", "row1"),
		"geoRack", "rack1")
	assert.Equal(t, 1, countClass(rack, "geoRsNodeLocation"))
}

func TestBuildBgpInstPol(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"bgpInstPol": []any{
			map[string]any{
				"name": "default",
				"bgpAsP": map[string]any{
					"asn": "65001",
				},
				"bgpRRP": []any{
					map[string]any{
						"bgpRRNodePEp": map[string]any{"id": "101"},
					},
					map[string]any{
						"bgpRRNodePEp": map[string]any{"id": "102"},
					},
				},
			},
		},
	})
	require.True(t, ok)

	pol := findChild(t, req.FabricInst(), "bgpInstPol", "default")
	asp := findChild(t, pol, "bgpAsP", "")
	assert.Equal(t, "65001", asp.Attr("asn"))
	rrp := findChild(t, pol, "bgpRRP", "")
	assert.Equal(t, 2, countClass(rrp, "bgpRRNodePEp"))
}

func TestBuildSystemPolicies(t *testing.T) {
	t.Parallel()

	req := mit.NewConfigRequest()
	_, ok := Apply(req, map[string]any{
		"coopPol": []any{
			map[string]any{"name": "default", "type": "strict"},
		},
		"aaaPreLoginBanner": []any{
			map[string]any{"name": "default", "guiMessage": "authorized use only"},
		},
		"epLoopProtectP": []any{
			map[string]any{"name": "default", "adminSt": "enabled"},
		},
		"pkiExportEncryptionKey": []any{
			map[string]any{"strongEncryptionEnabled": "true"},
		},
		"infraPortTrackPol": []any{
			map[string]any{"name": "default", "adminSt": "on"},
		},
	})
	require.True(t, ok)

	coop := findChild(t, req.FabricInst(), "coopPol", "default")
	assert.Equal(t, "strict", coop.Attr("type"))
	banner := findChild(t, req.UserEp(), "aaaPreLoginBanner", "default")
	assert.Equal(t, "authorized use only", banner.Attr("guiMessage"))
	assert.Equal(t, 1, countClass(req.Infra(), "epLoopProtectP"))
	assert.Equal(t, 1, countClass(req.Infra(), "infraPortTrackPol"))
	key := findChild(t, req.Uni(), "pkiExportEncryptionKey", "")
	assert.Equal(t, "true", key.Attr("strongEncryptionEnabled"))
}
