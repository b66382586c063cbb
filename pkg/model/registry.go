/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"fmt"
	"sort"

	"github.com/jcriveros/devaci/pkg/mit"
)

// Builder renders the entries of one template class into the request.
type Builder func(req *mit.ConfigRequest, value any)

var registry = map[string]Builder{}

func register(class string, b Builder) {
	registry[class] = b
}

// flat registers a builder that emits one object per entry under the parent
// returned by pick, merged on the name attribute.
func flat(class string, pick func(req *mit.ConfigRequest) *mit.Mo) {
	register(class, func(req *mit.ConfigRequest, value any) {
		for _, entry := range asList(value) {
			pick(req).Ensure(class, "name", attrs(entry))
		}
	})
}

// Lookup returns the builder registered for class.
func Lookup(class string) (Builder, bool) {
	b, ok := registry[class]
	return b, ok
}

// Classes returns the supported template classes, sorted.
func Classes() []string {
	classes := make([]string, 0, len(registry))
	for class := range registry {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Apply builds every class present in doc into req, in sorted class order so
// repeated runs produce the same payload. Empty values are skipped. It
// returns one log line per built class and whether every class was
// recognized.
func Apply(req *mit.ConfigRequest, doc map[string]any) ([]string, bool) {
	classes := make([]string, 0, len(doc))
	for class := range doc {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	var logs []string
	ok := true
	for _, class := range classes {
		value := doc[class]
		if isEmpty(value) {
			continue
		}
		b, found := registry[class]
		if !found {
			logs = append(logs, fmt.Sprintf("class %s is not supported", class))
			ok = false
			continue
		}
		b(req, value)
		logs = append(logs, fmt.Sprintf("class %s built", class))
	}
	return logs, ok
}
