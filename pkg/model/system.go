/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import "github.com/jcriveros/devaci/pkg/mit"

func init() {
	register("bgpInstPol", buildBgpInstPol)
	register("pkiExportEncryptionKey", buildExportEncryptionKey)
	flat("coopPol", (*mit.ConfigRequest).FabricInst)
	flat("datetimeFormat", (*mit.ConfigRequest).FabricInst)
	flat("isisDomPol", (*mit.ConfigRequest).FabricInst)
	flat("aaaFabricSec", (*mit.ConfigRequest).UserEp)
	flat("aaaPreLoginBanner", (*mit.ConfigRequest).UserEp)
	flat("epLoopProtectP", (*mit.ConfigRequest).Infra)
	flat("epControlP", (*mit.ConfigRequest).Infra)
	flat("epIpAgingP", (*mit.ConfigRequest).Infra)
	flat("infraSetPol", (*mit.ConfigRequest).Infra)
	flat("infraPortTrackPol", (*mit.ConfigRequest).Infra)
}

func buildBgpInstPol(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		pol := req.FabricInst().Ensure("bgpInstPol", "name", attrs(entry))
		if asp, ok := childMap(entry, "bgpAsP"); ok && valid(asp, "asn") {
			pol.Add(mit.New("bgpAsP", attrs(asp)))
		}
		if rrps := childList(entry, "bgpRRP"); len(rrps) > 0 {
			rrp := pol.Ensure("bgpRRP", "", nil)
			for _, e := range rrps {
				for _, pep := range childList(e, "bgpRRNodePEp") {
					rrp.Add(mit.New("bgpRRNodePEp", attrs(pep)))
				}
			}
		}
		// External route reflector nodes land under their own container.
		if exts := childList(entry, "ExtRRP"); len(exts) > 0 {
			ext := pol.Ensure("bgpExtRRP", "", nil)
			for _, e := range exts {
				ext.Add(mit.New("bgpRRNodePEp", attrs(e)))
			}
		}
	}
}

func buildExportEncryptionKey(req *mit.ConfigRequest, value any) {
	for _, entry := range asList(value) {
		req.Uni().Ensure("pkiExportEncryptionKey", "", attrs(entry))
	}
}
