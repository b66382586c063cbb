// Package mit implements the ACI management information tree payloads the
// controller consumes: managed objects (class, attributes, children) and the
// ConfigRequest aggregation root committed to the APIC REST API.
//
// The JSON form matches the controller's native shape:
//
//	{"fvTenant": {"attributes": {"name": "prod"}, "children": [...]}}
//
// and the XML form the equivalent element tree. All attribute values are
// strings, as they are on the wire.
package mit
