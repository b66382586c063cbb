/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer writes run results and payloads to files or stdout in
// JSON, YAML, XML or table form.
package serializer
