package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Amund211/gridline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementPoints(t *testing.T) {
	t.Parallel()

	expectedByPlacement := []int{15, 12, 10, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	for placement, expected := range expectedByPlacement {
		assert.Equal(t, expected, domain.Placement(placement+1).Points())
	}

	assert.Equal(t, 0, domain.Placement(13).Points())
	assert.Equal(t, 0, domain.Placement(100).Points())
	assert.Equal(t, 0, domain.PlacementDNF.Points())
}

func TestPlacementIsDNF(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.PlacementDNF.IsDNF())
	assert.False(t, domain.Placement(1).IsDNF())
	assert.False(t, domain.Placement(12).IsDNF())
}

func TestPlacementJSON(t *testing.T) {
	t.Parallel()

	t.Run("unmarshal", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			input    string
			expected domain.Placement
			errors   bool
		}{
			{name: "first place", input: `1`, expected: domain.Placement(1)},
			{name: "twelfth place", input: `12`, expected: domain.Placement(12)},
			{name: "dnf integer sentinel", input: `0`, expected: domain.PlacementDNF},
			{name: "dnf string sentinel", input: `"DNF"`, expected: domain.PlacementDNF},
			{name: "dnf lowercase", input: `"dnf"`, expected: domain.PlacementDNF},
			{name: "negative", input: `-1`, errors: true},
			{name: "arbitrary string", input: `"first"`, errors: true},
			{name: "not a number", input: `{}`, errors: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				var placement domain.Placement
				err := json.Unmarshal([]byte(tt.input), &placement)
				if tt.errors {
					require.Error(t, err)
					return
				}
				require.NoError(t, err)
				require.Equal(t, tt.expected, placement)
			})
		}
	})

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(domain.Placement(3))
		require.NoError(t, err)
		assert.Equal(t, `3`, string(data))

		data, err = json.Marshal(domain.PlacementDNF)
		require.NoError(t, err)
		assert.Equal(t, `"DNF"`, string(data))
	})
}
