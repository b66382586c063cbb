/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/

// Package apic implements the REST client for the APIC controller: session
// management (login, refresh, logout) and configuration commits against the
// policy universe.
package apic
