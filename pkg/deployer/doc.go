/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/

// Package deployer orchestrates a configuration run: render templates,
// build managed object trees, and commit them to the controller in order.
// A run continues past failed templates and reports the outcome per
// template.
package deployer
