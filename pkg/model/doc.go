/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/

// Package model maps rendered template documents onto managed object trees.
//
// A rendered document is keyed by ACI class name (fvTenant, fvBD,
// infraAccPortGrp, ...), each holding one entry or a list of entries. The
// package dispatches every class to its builder, which places the objects
// under the right container in a mit.ConfigRequest and attaches the relation
// children the class supports.
package model
