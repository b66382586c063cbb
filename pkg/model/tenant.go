/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import "github.com/jcriveros/devaci/pkg/mit"

func init() {
	register("fvTenant", buildTenant)
	register("fvAp", buildAp)
	register("fvAEPg", buildAEPg)
	register("staticPath", buildStaticPath)
	register("fvRsPathAtt", buildRsPathAtt)
	register("fvBD", buildBD)
	register("fvCtx", buildCtx)
	register("l3extOut", buildL3extOut)
	register("fvnsAddrInst", buildAddrInst)
	register("mgmtGrp", buildMgmtGrp)
	register("mgmtNodeGrp", buildMgmtNodeGrp)
}

func buildTenant(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		req.Tenant(scalar(entry, "name")).SetAttrs(attrs(entry))
	}
}

func buildAp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant") {
			continue
		}
		tenant := req.Tenant(scalar(entry, "tenant"))
		tenant.Ensure("fvAp", "name", attrs(entry, "tenant"))
	}
}

func buildAEPg(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant", "fvApName") {
			continue
		}
		ap := req.Tenant(scalar(entry, "tenant")).
			Ensure("fvAp", "name", map[string]string{"name": scalar(entry, "fvApName")})
		epg := ap.Ensure("fvAEPg", "name", attrs(entry, "tenant", "fvApName"))
		addRels(epg, entry, []rel{
			{"fvRsBd", []string{"tnFvBDName"}},
			{"fvRsDomAtt", []string{"tDn"}},
			{"fvRsPathAtt", []string{"tDn", "primaryEncap", "mode"}},
		})
	}
}

// buildStaticPath binds static ports in bulk: one application profile entry
// carrying its EPGs, each with the paths to attach.
func buildStaticPath(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant") {
			continue
		}
		ap := req.Tenant(scalar(entry, "tenant")).
			Ensure("fvAp", "name", attrs(entry, "tenant"))
		for _, e := range childList(entry, "fvAEPg") {
			if !required(e, "name") {
				continue
			}
			epg := ap.Ensure("fvAEPg", "name", map[string]string{"name": scalar(e, "name")})
			addRels(epg, e, []rel{
				{"fvRsPathAtt", []string{"tDn"}},
			})
		}
	}
}

func buildRsPathAtt(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "tenant", "fvApName", "fvAEPgName", "tDn") ||
			!valid(entry, "primaryEncap", "mode") {
			continue
		}
		ap := req.Tenant(scalar(entry, "tenant")).
			Ensure("fvAp", "name", map[string]string{"name": scalar(entry, "fvApName")})
		epg := ap.Ensure("fvAEPg", "name", map[string]string{"name": scalar(entry, "fvAEPgName")})
		epg.Add(mit.New("fvRsPathAtt", attrs(entry, "tenant", "fvApName", "fvAEPgName")))
	}
}

func buildBD(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant") {
			continue
		}
		bd := req.Tenant(scalar(entry, "tenant")).
			Ensure("fvBD", "name", attrs(entry, "tenant"))
		addRels(bd, entry, []rel{
			{"fvRsCtx", []string{"tnFvCtxName"}},
			{"igmpIfP", []string{"name"}},
			{"fvRsBdToEpRet", []string{"tnFvEpRetPolName"}},
			{"fvRsIgmpsn", []string{"tnIgmpSnoopPolName"}},
			{"fvRsMldsn", []string{"tnMldSnoopPolName"}},
			{"fvRsBDToOut", []string{"tnL3extOutName"}},
			{"fvSubnet", []string{"ip"}},
		})
	}
}

func buildCtx(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant") {
			continue
		}
		ctx := req.Tenant(scalar(entry, "tenant")).
			Ensure("fvCtx", "name", attrs(entry, "tenant"))
		if anyEntry, ok := childMap(entry, "vzAny"); ok {
			vzAny := ctx.Ensure("vzAny", "", attrs(anyEntry))
			addRels(vzAny, anyEntry, []rel{
				{"vzRsAnyToProv", []string{"tnVzBrCPName"}},
				{"vzRsAnyToCons", []string{"tnVzBrCPName"}},
			})
		}
		addRels(ctx, entry, []rel{
			{"fvRsCtxToEpRet", []string{"tnFvEpRetPolName"}},
			{"fvRsCtxToExtRouteTagPol", []string{"tnL3extRouteTagPolName"}},
			{"fvRsOspfCtxPol", []string{"tnOspfCtxPolName"}},
			{"fvRsBgpCtxPol", []string{"tnBgpCtxPolName"}},
			{"fvRsVrfValidationPol", []string{"tnL3extVrfValidationPolName"}},
			{"pimCtxP", []string{"mtu"}},
		})
	}
}

func buildL3extOut(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant") {
			continue
		}
		out := req.Tenant(scalar(entry, "tenant")).
			Ensure("l3extOut", "name", attrs(entry, "tenant"))
		addRels(out, entry, []rel{
			{"l3extRsEctx", []string{"tnFvCtxName"}},
			{"l3extRsL3DomAtt", []string{"tDn"}},
			{"ospfExtP", nil},
		})
		for _, np := range childList(entry, "l3extLNodeP") {
			if !required(np, "name") {
				continue
			}
			nodeP := out.Ensure("l3extLNodeP", "name", attrs(np))
			addRels(nodeP, np, []rel{
				{"l3extRsNodeL3OutAtt", []string{"tDn"}},
			})
			for _, ifp := range childList(np, "l3extLIfP") {
				if !required(ifp, "name") {
					continue
				}
				lifP := nodeP.Ensure("l3extLIfP", "name", attrs(ifp))
				addRels(lifP, ifp, []rel{
					{"l3extRsPathL3OutAtt", []string{"tDn"}},
				})
			}
		}
	}
}

func buildAddrInst(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name", "tenant") {
			continue
		}
		inst := req.Tenant(scalar(entry, "tenant")).
			Ensure("fvnsAddrInst", "name", attrs(entry, "tenant"))
		addRels(inst, entry, []rel{
			{"fvnsUcastAddrBlk", []string{"from"}},
		})
	}
}

func buildMgmtGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.FuncP().Ensure("mgmtGrp", "name", attrs(entry))
		if zone, ok := childMap(entry, "mgmtOoBZone"); ok {
			oob := grp.Ensure("mgmtOoBZone", "", attrs(zone))
			addRels(oob, zone, []rel{
				{"mgmtRsOoB", nil},
				{"mgmtRsAddrInst", nil},
			})
		}
		if zone, ok := childMap(entry, "mgmtInBZone"); ok {
			inb := grp.Ensure("mgmtInBZone", "", attrs(zone))
			addRels(inb, zone, []rel{
				{"mgmtRsInB", nil},
				{"mgmtRsAddrInst", nil},
			})
		}
	}
}

func buildMgmtNodeGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.Infra().Ensure("mgmtNodeGrp", "name", attrs(entry))
		addRels(grp, entry, []rel{
			{"mgmtRsGrp", nil},
			{"infraNodeBlk", []string{"from"}},
		})
	}
}
