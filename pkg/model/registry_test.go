/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcriveros/devaci/pkg/mit"
)

// findChild locates the first child of the given class, optionally matched
// on its name attribute.
func findChild(t *testing.T, m *mit.Mo, class, name string) *mit.Mo {
	t.Helper()
	for _, c := range m.Children {
		if c.Class == class && (name == "" || c.Attr("name") == name) {
			return c
		}
	}
	t.Fatalf("no %s child named %q", class, name)
	return nil
}

func countClass(m *mit.Mo, class string) int {
	n := 0
	for _, c := range m.Children {
		if c.Class == class {
			n++
		}
	}
	return n
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("builds supported classes", func(t *testing.T) {
		t.Parallel()

		req := mit.NewConfigRequest()
		logs, ok := Apply(req, map[string]any{
			"fvTenant": []any{
				map[string]any{"name": "prod", "descr": "production"},
			},
		})
		assert.True(t, ok)
		assert.Equal(t, []string{"class fvTenant built"}, logs)

		tenant := findChild(t, req.Uni(), "fvTenant", "prod")
		assert.Equal(t, "production", tenant.Attr("descr"))
	})

	t.Run("unknown class is reported and skipped", func(t *testing.T) {
		t.Parallel()

		req := mit.NewConfigRequest()
		logs, ok := Apply(req, map[string]any{
			"fvTenant": []any{map[string]any{"name": "t1"}},
			"noSuch":   []any{map[string]any{"name": "x"}},
		})
		assert.False(t, ok)
		require.Len(t, logs, 2)
		assert.Contains(t, logs, "class noSuch is not supported")
		assert.Equal(t, 1, countClass(req.Uni(), "fvTenant"))
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		t.Parallel()

		req := mit.NewConfigRequest()
		logs, ok := Apply(req, map[string]any{
			"fvTenant": nil,
			"fvBD":     []any{},
			"fvCtx":    "",
			"snmpPol":  "nan",
		})
		assert.True(t, ok)
		assert.Empty(t, logs)
		assert.True(t, req.Empty())
	})

	t.Run("classes apply in sorted order", func(t *testing.T) {
		t.Parallel()

		req := mit.NewConfigRequest()
		logs, ok := Apply(req, map[string]any{
			"fvBD": []any{
				map[string]any{"name": "bd1", "tenant": "t1"},
			},
			"fvTenant": []any{
				map[string]any{"name": "t1"},
			},
		})
		assert.True(t, ok)
		assert.Equal(t, []string{"class fvBD built", "class fvTenant built"}, logs)
		// Both classes land on the same tenant object.
		assert.Equal(t, 1, countClass(req.Uni(), "fvTenant"))
	})
}

func TestClasses(t *testing.T) {
	t.Parallel()

	classes := Classes()
	assert.Contains(t, classes, "fvTenant")
	assert.Contains(t, classes, "infraAccBndlGrp")
	assert.Contains(t, classes, "bgpInstPol")
	assert.IsIncreasing(t, classes)

	_, ok := Lookup("fvTenant")
	assert.True(t, ok)
	_, ok = Lookup("noSuch")
	assert.False(t, ok)
}
