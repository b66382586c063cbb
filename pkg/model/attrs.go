/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jcriveros/devaci/pkg/mit"
)

// asList normalizes a rendered class value into entries. A single mapping
// counts as a one-entry list; anything else yields nothing.
func asList(value any) []map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		entries := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				entries = append(entries, m)
			}
		}
		return entries
	}
	return nil
}

// scalar returns the entry value for key as a trimmed string. The nan
// spelling of an empty spreadsheet cell counts as unset. Keys suffixed with
// an underscore alias the reserved attribute names (from_, to_).
func scalar(entry map[string]any, key string) string {
	v, ok := entry[key]
	if !ok {
		v, ok = entry[key+"_"]
	}
	if !ok || v == nil {
		return ""
	}
	s, isStr := v.(string)
	if !isStr {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

// present reports whether the entry carries the key under either spelling.
func present(entry map[string]any, key string) bool {
	if _, ok := entry[key]; ok {
		return true
	}
	_, ok := entry[key+"_"]
	return ok
}

// required reports whether every listed key holds a usable scalar. Used for
// the keys that name an object or locate its parent.
func required(entry map[string]any, keys ...string) bool {
	for _, k := range keys {
		if scalar(entry, k) == "" {
			return false
		}
	}
	return true
}

// valid reports whether no listed key is present with an unusable value.
// Absent keys pass: a sparse row omits the columns it does not set and the
// controller fills defaults, so only a present nan/empty/null cell rejects
// the entry.
func valid(entry map[string]any, keys ...string) bool {
	for _, k := range keys {
		if present(entry, k) && scalar(entry, k) == "" {
			return false
		}
	}
	return true
}

// attrs collects the scalar attributes of entry. Nested structures are the
// children each builder handles itself, and the listed meta keys only locate
// the parent object; neither belongs on the wire.
func attrs(entry map[string]any, drop ...string) map[string]string {
	out := map[string]string{}
	for k, v := range entry {
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		if slices.Contains(drop, k) {
			continue
		}
		s := scalar(entry, k)
		if s == "" {
			continue
		}
		switch k {
		case "from_":
			k = "from"
		case "to_":
			k = "to"
		}
		out[k] = s
	}
	return out
}

// childMap returns the nested mapping under key, if present.
func childMap(entry map[string]any, key string) (map[string]any, bool) {
	m, ok := entry[key].(map[string]any)
	return m, ok
}

// childList returns the nested entries under key. Both a single mapping and
// a list of mappings are accepted.
func childList(entry map[string]any, key string) []map[string]any {
	return asList(entry[key])
}

// rel is a relation child keyed by its class name, emitted only when its
// guard attributes are present.
type rel struct {
	class  string
	guards []string
}

// addRels appends one child per relation entry found under its class key.
func addRels(parent *mit.Mo, entry map[string]any, rels []rel) {
	for _, r := range rels {
		for _, c := range childList(entry, r.class) {
			if !valid(c, r.guards...) {
				continue
			}
			parent.Add(mit.New(r.class, attrs(c)))
		}
	}
}

// isEmpty reports whether a rendered value carries no configuration.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(v)
		return s == "" || strings.EqualFold(s, "nan")
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
