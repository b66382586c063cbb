/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the devaci command-line interface.
//
// # Commands
//
// check - Render templates and build payloads without touching the fabric:
//
//	devaci check --template tenants.yaml.tmpl --vars prod.yaml
//
// deploy - Commit rendered configuration to the controller:
//
//	devaci deploy --ip 10.0.0.1 --username admin --template templates/
//
// classes - List the template classes the deployer can build:
//
//	devaci classes --format table
//
// Templates may be single files, directories, or go-getter URLs (git, http,
// s3). Controller settings come from flags or the DEVACI_* environment
// variables.
package cli
