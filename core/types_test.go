// SPDX-License-Identifier: MIT
// Package core_test verifies the kind tables: charges, fermion flags, parsing
// and the agreement between per-kind role tables and per-variant slot lists.

package core_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/feynman/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_ChargeAndFermion(t *testing.T) {
	tests := []struct {
		kind    core.Kind
		charge  int
		fermion bool
		name    string
	}{
		{core.Electron, -1, true, "electron"},
		{core.Positron, +1, true, "positron"},
		{core.Photon, 0, false, "photon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.charge, tc.kind.Charge())
			assert.Equal(t, tc.fermion, tc.kind.IsFermion())
			assert.Equal(t, tc.name, tc.kind.String())
			assert.True(t, tc.kind.Valid())
		})
	}
	assert.False(t, core.Kind(9).Valid())
	assert.Equal(t, "kind(9)", core.Kind(9).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want core.Kind
	}{
		{"electron", core.Electron},
		{"E-", core.Electron},
		{"e⁻", core.Electron},
		{" Positron ", core.Positron},
		{"e+", core.Positron},
		{"photon", core.Photon},
		{"gamma", core.Photon},
		{"γ", core.Photon},
	}
	for _, tc := range tests {
		got, err := core.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := core.ParseKind("muon")
	assert.ErrorIs(t, err, core.ErrUnknownKind)
}

// TestPossibleVertices_Consistent locks the per-kind role tables against the
// per-variant slot lists in both directions.
func TestPossibleVertices_Consistent(t *testing.T) {
	for _, k := range core.Kinds {
		from := k.PossibleFromVertices()
		to := k.PossibleToVertices()
		require.NotEmpty(t, from, k.String())
		require.NotEmpty(t, to, k.String())

		for _, vk := range from {
			assert.Contains(t, vk.Outputs(), k, "%s lists %s as from-vertex", k, vk)
		}
		for _, vk := range to {
			assert.Contains(t, vk.Inputs(), k, "%s lists %s as to-vertex", k, vk)
		}
		for _, vk := range core.InnerVertexKinds {
			if slices.Contains(vk.Outputs(), k) {
				assert.Contains(t, from, vk, "%s missing from-vertex %s", k, vk)
			}
			if slices.Contains(vk.Inputs(), k) {
				assert.Contains(t, to, vk, "%s missing to-vertex %s", k, vk)
			}
		}
	}
}

// TestVertexKinds_Shape checks 1 boson + 2 fermions and charge balance per variant.
func TestVertexKinds_Shape(t *testing.T) {
	for _, vk := range core.InnerVertexKinds {
		t.Run(vk.String(), func(t *testing.T) {
			assert.False(t, vk.IsOrigin())
			assert.Equal(t, 3, vk.Arity())

			bosons, fermions, in, out := 0, 0, 0, 0
			for _, k := range vk.Inputs() {
				in += k.Charge()
				if k.IsFermion() {
					fermions++
				} else {
					bosons++
				}
			}
			for _, k := range vk.Outputs() {
				out += k.Charge()
				if k.IsFermion() {
					fermions++
				} else {
					bosons++
				}
			}
			assert.Equal(t, 1, bosons)
			assert.Equal(t, 2, fermions)
			assert.Equal(t, in, out)
		})
	}
	for _, vk := range []core.VertexKind{core.IncomingVertex, core.OutgoingVertex} {
		assert.True(t, vk.IsOrigin())
		assert.Equal(t, 1, vk.Arity())
		assert.Nil(t, vk.Inputs())
		assert.Nil(t, vk.Outputs())
	}
}

func TestKindTables_ReturnCopies(t *testing.T) {
	from := core.Electron.PossibleFromVertices()
	from[0] = core.Annihilation
	assert.Equal(t, core.ElectronEmit, core.Electron.PossibleFromVertices()[0])

	in := core.Production.Inputs()
	in[0] = core.Electron
	assert.Equal(t, []core.Kind{core.Photon}, core.Production.Inputs())
}
