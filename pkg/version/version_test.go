/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Version
		wantErr bool
	}{
		{
			name: "reported form",
			in:   "5.2(1g)",
			want: Version{Major: 5, Minor: 2, Maintenance: "1g"},
		},
		{
			name: "dotted form",
			in:   "5.2.1g",
			want: Version{Major: 5, Minor: 2, Maintenance: "1g"},
		},
		{
			name: "major minor only",
			in:   "6.0",
			want: Version{Major: 6, Minor: 0},
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
		{
			name:    "garbage",
			in:      "not-a-version",
			wantErr: true,
		},
		{
			name:    "too many components",
			in:      "1.2.3.4",
			wantErr: true,
		},
		{
			name:    "unbalanced parenthesis",
			in:      "5.2)1g(",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	v := Version{Major: 5, Minor: 2, Maintenance: "1g"}
	assert.Equal(t, "5.2(1g)", v.String())
	assert.Equal(t, "6.0", Version{Major: 6}.String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	older := Version{Major: 4, Minor: 2, Maintenance: "7f"}
	newer := Version{Major: 5, Minor: 2, Maintenance: "1g"}

	assert.Equal(t, -1, older.Compare(newer))
	assert.Equal(t, 1, newer.Compare(older))
	assert.Equal(t, 0, newer.Compare(newer))

	assert.True(t, newer.AtLeast(5, 2))
	assert.True(t, newer.AtLeast(4, 0))
	assert.False(t, older.AtLeast(5, 0))
}
