/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// Funcs returns the template function set available to all templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"split":  splitFunc,
		"expand": expandFunc,
		"bool":   boolFunc,
		"nan":    nanFunc,
	}
}

// splitFunc splits a value on the given delimiter.
func splitFunc(value any, delimiter string) []string {
	return strings.Split(fmt.Sprint(value), delimiter)
}

// expandFunc expands a range expression such as "1-3,5" into [1 2 3 5].
func expandFunc(value any) ([]int, error) {
	var result []int
	for _, part := range strings.Split(fmt.Sprint(value), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if from, to, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(from))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(to))
			if err != nil {
				return nil, fmt.Errorf("invalid range %q: %w", part, err)
			}
			if end < start {
				return nil, fmt.Errorf("invalid range %q: end before start", part)
			}
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		result = append(result, n)
	}
	return result, nil
}

// boolFunc interprets a value as a boolean the way the controller does:
// "true", "yes" and "1" are true, everything else is false.
func boolFunc(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(fmt.Sprint(value))) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// nanFunc reports whether a value is usable, i.e. not a leaked NaN cell.
func nanFunc(value any) bool {
	return !strings.EqualFold(strings.TrimSpace(fmt.Sprint(value)), "nan")
}
