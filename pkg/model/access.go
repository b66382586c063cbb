/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import "github.com/jcriveros/devaci/pkg/mit"

func init() {
	register("infraNodeP", buildNodeP)
	register("infraAccNodePGrp", buildAccNodePGrp)
	register("infraSpineP", buildSpineP)
	register("infraSpineAccNodePGrp", buildSpineAccNodePGrp)
	register("infraSpAccPortP", buildSpAccPortP)
	register("infraSpAccPortGrp", buildSpAccPortGrp)
	register("infraAccPortP", buildAccPortP)
	register("infraFexP", buildFexP)
	register("infraAccPortGrp", buildAccPortGrp)
	register("infraAccBndlGrp", buildAccBndlGrp)
	register("infraAttEntityP", buildAttEntityP)
	register("fvnsVlanInstP", buildVlanInstP)
	register("physDomP", domP("physDomP"))
	register("l3extDomP", domP("l3extDomP"))
	register("l2extDomP", domP("l2extDomP"))
	flat("fabricHIfPol", (*mit.ConfigRequest).Infra)
	flat("qosPfcIfPol", (*mit.ConfigRequest).Infra)
	flat("cdpIfPol", (*mit.ConfigRequest).Infra)
	flat("lldpIfPol", (*mit.ConfigRequest).Infra)
	flat("lacpLagPol", (*mit.ConfigRequest).Infra)
	flat("stpIfPol", (*mit.ConfigRequest).Infra)
	flat("stormctrlIfPol", (*mit.ConfigRequest).Infra)
	flat("mcpIfPol", (*mit.ConfigRequest).Infra)
	flat("mcpInstPol", (*mit.ConfigRequest).Infra)
}

// Interface policy relations shared by access port and bundle policy groups.
// A relation whose target policy name cell is present but empty is skipped,
// so sparse spreadsheet rows do not produce empty relation objects.
var portGrpRels = []rel{
	{"infraRsAttEntP", []string{"tDn"}},
	{"infraRsStpIfPol", []string{"tnStpIfPolName"}},
	{"infraRsQosLlfcIfPol", []string{"tnQosLlfcIfPolName"}},
	{"infraRsQosIngressDppIfPol", []string{"tnQosDppPolName"}},
	{"infraRsStormctrlIfPol", []string{"tnStormctrlIfPolName"}},
	{"infraRsQosEgressDppIfPol", []string{"tnQosDppPolName"}},
	{"infraRsMonIfInfraPol", []string{"tnMonInfraPolName"}},
	{"infraRsMcpIfPol", []string{"tnMcpIfPolName"}},
	{"infraRsMacsecIfPol", []string{"tnMacsecIfPolName"}},
	{"infraRsQosSdIfPol", []string{"tnQosSdIfPolName"}},
	{"infraRsCdpIfPol", []string{"tnCdpIfPolName"}},
	{"infraRsL2IfPol", []string{"tnL2IfPolName"}},
	{"infraRsQosDppIfPol", []string{"tnQosDppPolName"}},
	{"infraRsCoppIfPol", []string{"tnCoppIfPolName"}},
	{"infraRsLldpIfPol", []string{"tnLldpIfPolName"}},
	{"infraRsFcIfPol", []string{"tnFcIfPolName"}},
	{"infraRsQosPfcIfPol", []string{"tnQosPfcIfPolName"}},
	{"infraRsHIfPol", []string{"tnFabricHIfPolName"}},
	{"infraRsL2PortSecurityPol", []string{"tnL2PortSecurityPolName"}},
	{"infraRsL2PortAuthPol", []string{"tnL2PortAuthPolName"}},
	{"infraRsLinkFlapPol", []string{"tnFabricLinkFlapPolName"}},
}

var accNodePGrpRels = []rel{
	{"infraRsTopoctrlFwdScaleProfPol", []string{"tnTopoctrlFwdScaleProfilePolName"}},
	{"infraRsLeafTopoctrlUsbConfigProfilePol", []string{"tnTopoctrlUsbConfigProfilePolName"}},
	{"infraRsLeafPGrpToLldpIfPol", []string{"tnLldpIfPolName"}},
	{"infraRsLeafPGrpToCdpIfPol", []string{"tnCdpIfPolName"}},
	{"infraRsBfdIpv4InstPol", []string{"tnBfdIpv4InstPolName"}},
	{"infraRsBfdIpv6InstPol", []string{"tnBfdIpv6InstPolName"}},
	{"infraRsBfdMhIpv4InstPol", []string{"tnBfdMhIpv4InstPolName"}},
	{"infraRsBfdMhIpv6InstPol", []string{"tnBfdMhIpv6InstPolName"}},
	{"infraRsSynceInstPol", []string{"tnSynceInstPolName"}},
	{"infraRsPoeInstPol", []string{"tnPoeInstPolName"}},
	{"infraRsEquipmentFlashConfigPol", []string{"tnEquipmentFlashConfigPolName"}},
	{"infraRsMonNodeInfraPol", []string{"tnMonInfraPolName"}},
	{"infraRsFcInstPol", []string{"tnFcInstPolName"}},
	{"infraRsFcFabricPol", []string{"tnFcFabricPolName"}},
	{"infraRsTopoctrlFastLinkFailoverInstPol", []string{"tnTopoctrlFastLinkFailoverInstPolName"}},
	{"infraRsMstInstPol", []string{"tnStpInstPolName"}},
	{"infraRsLeafCoppProfile", []string{"tnCoppLeafProfileName"}},
	{"infraRsIaclLeafProfile", []string{"tnIaclLeafProfileName"}},
	{"infraRsL2NodeAuthPol", []string{"tnL2NodeAuthPolName"}},
}

var spineAccNodePGrpRels = []rel{
	{"infraRsSpineCoppProfile", nil},
	{"infraRsSpineBfdIpv4InstPol", nil},
	{"infraRsSpineBfdIpv6InstPol", nil},
	{"infraRsIaclSpineProfile", nil},
	{"infraRsSpinePGrpToCdpIfPol", nil},
	{"infraRsSpinePGrpToLldpIfPol", nil},
}

var spAccPortGrpRels = []rel{
	{"infraRsHIfPol", nil},
	{"infraRsCdpIfPol", nil},
	{"infraRsMacsecIfPol", nil},
	{"infraRsAttEntP", nil},
	{"infraRsLinkFlapPol", nil},
	{"infraRsCoppIfPol", nil},
}

func domP(class string) Builder {
	return func(req *mit.ConfigRequest, value any) {
		for _, entry := range asList(value) {
			if !required(entry, "name") {
				continue
			}
			dom := req.Uni().Ensure(class, "name", attrs(entry))
			addRels(dom, entry, []rel{
				{"infraRsVlanNs", nil},
			})
		}
	}
}

func buildNodeP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		np := req.Infra().Ensure("infraNodeP", "name", attrs(entry))
		for _, ls := range childList(entry, "infraLeafS") {
			if !required(ls, "name") {
				continue
			}
			sel := np.Ensure("infraLeafS", "name", attrs(ls))
			addRels(sel, ls, []rel{
				{"infraNodeBlk", []string{"from"}},
				{"infraRsAccNodePGrp", []string{"tDn"}},
			})
		}
		addRels(np, entry, []rel{
			{"infraRsAccPortP", []string{"tDn"}},
		})
	}
}

func buildAccNodePGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.FuncP().Ensure("infraAccNodePGrp", "name", attrs(entry))
		addRels(grp, entry, accNodePGrpRels)
	}
}

func buildSpineP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		sp := req.Infra().Ensure("infraSpineP", "name", attrs(entry))
		for _, ss := range childList(entry, "infraSpineS") {
			if !required(ss, "name") {
				continue
			}
			sel := sp.Ensure("infraSpineS", "name", attrs(ss))
			addRels(sel, ss, []rel{
				{"infraRsSpineAccNodePGrp", nil},
				{"infraNodeBlk", nil},
			})
		}
		addRels(sp, entry, []rel{
			{"infraRsSpAccPortP", nil},
		})
	}
}

func buildSpineAccNodePGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.FuncP().Ensure("infraSpineAccNodePGrp", "name", attrs(entry))
		addRels(grp, entry, spineAccNodePGrpRels)
	}
}

func buildSpAccPortP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pp := req.Infra().Ensure("infraSpAccPortP", "name", attrs(entry))
		for _, ps := range childList(entry, "infraSHPortS") {
			if !required(ps, "name") {
				continue
			}
			sel := pp.Ensure("infraSHPortS", "name", attrs(ps))
			addRels(sel, ps, []rel{
				{"infraRsSpAccGrp", nil},
				{"infraPortBlk", nil},
			})
		}
	}
}

func buildSpAccPortGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.FuncP().Ensure("infraSpAccPortGrp", "name", attrs(entry))
		addRels(grp, entry, spAccPortGrpRels)
	}
}

func buildAccPortP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pp := req.Infra().Ensure("infraAccPortP", "name", attrs(entry))
		for _, ps := range childList(entry, "infraHPortS") {
			if !required(ps, "name") {
				continue
			}
			sel := pp.Ensure("infraHPortS", "name", attrs(ps))
			addRels(sel, ps, []rel{
				{"infraRsAccBaseGrp", []string{"tDn"}},
				{"infraPortBlk", []string{"fromPort"}},
			})
		}
	}
}

func buildFexP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		fp := req.Infra().Ensure("infraFexP", "name", attrs(entry))
		for _, ps := range childList(entry, "infraHPortS") {
			if !required(ps, "name") {
				continue
			}
			sel := fp.Ensure("infraHPortS", "name", attrs(ps))
			addRels(sel, ps, []rel{
				{"infraRsAccBaseGrp", nil},
				{"infraPortBlk", nil},
			})
		}
		addRels(fp, entry, []rel{
			{"infraFexBndlGrp", nil},
		})
	}
}

func buildAccPortGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.FuncP().Ensure("infraAccPortGrp", "name", attrs(entry))
		addRels(grp, entry, portGrpRels)
		addRels(grp, entry, []rel{
			{"infraRsDwdmIfPol", []string{"tnDwdmIfPolName"}},
		})
	}
}

func buildAccBndlGrp(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		grp := req.FuncP().Ensure("infraAccBndlGrp", "name", attrs(entry))
		addRels(grp, entry, portGrpRels)
		addRels(grp, entry, []rel{
			{"infraRsLacpPol", []string{"tnLacpLagPolName"}},
		})
	}
}

func buildAttEntityP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		aep := req.Infra().Ensure("infraAttEntityP", "name", attrs(entry))
		addRels(aep, entry, []rel{
			{"infraRsDomP", nil},
		})
	}
}

func buildVlanInstP(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		if !required(entry, "name") {
			continue
		}
		pool := req.Infra().Ensure("fvnsVlanInstP", "name", attrs(entry))
		addRels(pool, entry, []rel{
			{"fvnsEncapBlk", nil},
		})
	}
}
