/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package mit

import (
	"encoding/json"
	"encoding/xml"
)

// Well-known container classes under the policy universe.
const (
	ClassUni        = "polUni"
	ClassInfra      = "infraInfra"
	ClassFabricInst = "fabricInst"
	ClassCtrlrInst  = "ctrlrInst"
	ClassUserEp     = "aaaUserEp"
	ClassFuncP      = "infraFuncP"
	ClassTenant     = "fvTenant"
)

// ConfigRequest aggregates managed objects under a single polUni root for a
// configuration commit. Container accessors are idempotent: repeated calls
// merge into the same subtree, so builders for different classes can share
// parents without duplicating them in the payload.
type ConfigRequest struct {
	uni *Mo
}

// NewConfigRequest creates an empty configuration request.
func NewConfigRequest() *ConfigRequest {
	return &ConfigRequest{uni: New(ClassUni, nil)}
}

// Uni returns the policy universe root.
func (r *ConfigRequest) Uni() *Mo {
	return r.uni
}

// Infra returns the uni/infra container.
func (r *ConfigRequest) Infra() *Mo {
	return r.uni.Ensure(ClassInfra, "", nil)
}

// FuncP returns the uni/infra/funcprof container holding policy groups.
func (r *ConfigRequest) FuncP() *Mo {
	return r.Infra().Ensure(ClassFuncP, "", nil)
}

// FabricInst returns the uni/fabric container.
func (r *ConfigRequest) FabricInst() *Mo {
	return r.uni.Ensure(ClassFabricInst, "", nil)
}

// CtrlrInst returns the uni/controller container.
func (r *ConfigRequest) CtrlrInst() *Mo {
	return r.uni.Ensure(ClassCtrlrInst, "", nil)
}

// UserEp returns the uni/userext container.
func (r *ConfigRequest) UserEp() *Mo {
	return r.uni.Ensure(ClassUserEp, "", nil)
}

// Tenant returns the fvTenant with the given name, creating it when absent.
func (r *ConfigRequest) Tenant(name string) *Mo {
	return r.uni.Ensure(ClassTenant, "name", map[string]string{"name": name})
}

// AddMo appends a managed object directly under the policy universe.
func (r *ConfigRequest) AddMo(mo *Mo) {
	r.uni.Add(mo)
}

// Empty reports whether the request holds no configuration objects.
func (r *ConfigRequest) Empty() bool {
	return len(r.uni.Children) == 0
}

// Count returns the number of managed objects in the request, excluding the
// polUni root itself.
func (r *ConfigRequest) Count() int {
	return r.uni.Count() - 1
}

// Data returns the JSON commit body.
func (r *ConfigRequest) Data() ([]byte, error) {
	return json.Marshal(r.uni)
}

// XMLData returns the XML commit body.
func (r *ConfigRequest) XMLData() ([]byte, error) {
	return xml.Marshal(r.uni)
}

// Payload returns the request decoded into plain maps, for result records
// and pretty output.
func (r *ConfigRequest) Payload() (map[string]any, error) {
	data, err := r.Data()
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
