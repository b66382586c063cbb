/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import "github.com/jcriveros/devaci/pkg/mit"

func init() {
	register("fabricSetupPol", buildSetupPol)
	register("fabricSetupP", buildSetupP)
	register("fabricRsOosPath", buildRsOosPath)
	register("fabricNodeIdentPol", buildNodeIdentPol)
	register("fabricPodPGrp", buildPodPGrp)
	register("fabricPodP", buildPodP)
	register("datetimePol", buildDatetimePol)
	register("snmpPol", buildSnmpPol)
	register("commPol", buildCommPol)
	register("fabricProtPol", buildProtPol)
	register("geoSite", buildGeoSite)
	register("infrazoneZoneP", buildZoneP)
	flat("fabricNodeControl", (*mit.ConfigRequest).FabricInst)
	flat("latencyPtpMode", (*mit.ConfigRequest).FabricInst)
}

// fabricFuncP holds the fabric-level policy groups, parallel to infraFuncP
// on the access side.
func fabricFuncP(req *mit.ConfigRequest) *mit.Mo {
	return req.FabricInst().Ensure("fabricFuncP", "", nil)
}

func buildSetupPol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		pol := req.CtrlrInst().Ensure("fabricSetupPol", "", attrs(entry))
		addRels(pol, entry, []rel{
			{"fabricSetupP", nil},
		})
	}
}

func buildSetupP(req *mit.ConfigRequest, value any) {
	pol := req.CtrlrInst().Ensure("fabricSetupPol", "", nil)
	for _, entry := range asList(value) {
		pol.Add(mit.New("fabricSetupP", attrs(entry)))
	}
}

func buildRsOosPath(req *mit.ConfigRequest, value any) {
	pol := req.FabricInst().Ensure("fabricOOServicePol", "", nil)
	for _, entry := range asList(value) {
		pol.Add(mit.New("fabricRsOosPath", attrs(entry)))
	}
}

func buildNodeIdentPol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		pol := req.CtrlrInst().Ensure("fabricNodeIdentPol", "", attrs(entry))
		addRels(pol, entry, []rel{
			{"fabricNodeIdentP", nil},
		})
	}
}

func buildPodPGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := fabricFuncP(req).Ensure("fabricPodPGrp", "name", attrs(entry))
		addRels(grp, entry, []rel{
			{"fabricRsSnmpPol", nil},
			{"fabricRsPodPGrpIsisDomP", nil},
			{"fabricRsPodPGrpCoopP", nil},
			{"fabricRsPodPGrpBGPRRP", nil},
			{"fabricRsTimePol", nil},
			{"fabricRsMacsecPol", nil},
			{"fabricRsCommPol", nil},
		})
	}
}

func buildPodP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pod := req.FabricInst().Ensure("fabricPodP", "name", attrs(entry))
		for _, ps := range childList(entry, "fabricPodS") {
			if !required(ps, "name") {
				continue
			}
			sel := pod.Ensure("fabricPodS", "name", attrs(ps))
			addRels(sel, ps, []rel{
				{"fabricRsPodPGrp", nil},
				{"fabricPodBlk", nil},
			})
		}
	}
}

func buildDatetimePol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pol := req.FabricInst().Ensure("datetimePol", "name", attrs(entry))
		addRels(pol, entry, []rel{
			{"datetimeNtpAuthKey", []string{"id", "key", "trusted", "keyType"}},
		})
		for _, prov := range childList(entry, "datetimeNtpProv") {
			if !required(prov, "name") {
				continue
			}
			p := pol.Ensure("datetimeNtpProv", "name", attrs(prov))
			addRels(p, prov, []rel{
				{"datetimeRsNtpProvToNtpAuthKey", []string{"tnDatetimeNtpAuthKeyId"}},
				{"datetimeRsNtpProvToEpg", []string{"tDn"}},
			})
		}
	}
}

func buildSnmpPol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pol := req.FabricInst().Ensure("snmpPol", "name", attrs(entry))
		for _, grp := range childList(entry, "snmpClientGrpP") {
			if !required(grp, "name") {
				continue
			}
			g := pol.Ensure("snmpClientGrpP", "name", attrs(grp))
			addRels(g, grp, []rel{
				{"snmpRsEpg", []string{"tDn"}},
				{"snmpClientP", []string{"name", "addr"}},
			})
		}
		addRels(pol, entry, []rel{
			{"snmpUserP", []string{"name", "privType", "privKey", "authType", "authKey"}},
			{"snmpCommunityP", []string{"name"}},
			{"snmpTrapFwdServerP", []string{"addr", "port"}},
		})
	}
}

func buildCommPol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pol := req.FabricInst().Ensure("commPol", "name", attrs(entry))
		addRels(pol, entry, []rel{
			{"commTelnet", []string{"name", "adminSt"}},
			{"commSsh", []string{"name", "adminSt"}},
			{"commHttp", []string{"name", "adminSt"}},
			{"commHttps", []string{"name", "adminSt"}},
			{"commShellinabox", []string{"name", "adminSt"}},
		})
	}
}

func buildProtPol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		pol := req.FabricInst().Ensure("fabricProtPol", "", attrs(entry))
		for _, gep := range childList(entry, "fabricExplicitGEp") {
			if !required(gep, "name") {
				continue
			}
			g := pol.Ensure("fabricExplicitGEp", "name", attrs(gep))
			addRels(g, gep, []rel{
				{"fabricRsVpcInstPol", nil},
				{"fabricNodePEp", nil},
			})
		}
	}
}

func buildGeoSite(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		site := req.FabricInst().Ensure("geoSite", "name", attrs(entry))
		for _, b := range childList(entry, "geoBuilding") {
			bld := site.Ensure("geoBuilding", "name", attrs(b))
			for _, f := range childList(b, "geoFloor") {
				fl := bld.Ensure("geoFloor", "name", attrs(f))
				for _, rm := range childList(f, "geoRoom") {
					room := fl.Ensure("geoRoom", "name", attrs(rm))
					for _, rw := range childList(rm, "geoRow") {
						row := room.Ensure("geoRow", "name", attrs(rw))
						for _, rk := range childList(rw, "geoRack") {
							if !required(rk, "name") {
								continue
							}
							rack := row.Ensure("geoRack", "name", attrs(rk))
							addRels(rack, rk, []rel{
								{"geoRsNodeLocation", []string{"tDn"}},
							})
						}
					}
				}
			}
		}
	}
}

func buildZoneP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		zp := req.Infra().Ensure("infrazoneZoneP", "name", attrs(entry))
		for _, z := range childList(entry, "Zone") {
			zp.Add(mit.New("infrazoneZone", attrs(z)))
		}
	}
}
