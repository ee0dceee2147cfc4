package rotation

import (
	"testing"

	"shiftrota/internal"
	"shiftrota/internal/roles"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAdvance(t *testing.T) {
	t.Run("records last role and outside cooldown", func(t *testing.T) {
		s := Advance(Empty(), internal.Assignment{
			roles.Machine: {"ana"},
			roles.Lanes:   {"ben"},
		})
		require.Equal(t, map[string]roles.Kind{"ana": roles.Machine, "ben": roles.Lanes}, s.LastRole)
		require.True(t, s.CoolingDown("ben"))
		require.False(t, s.CoolingDown("ana"))
	})

	t.Run("keeps exactly one block of memory", func(t *testing.T) {
		first := Advance(Empty(), internal.Assignment{
			roles.Lanes:   {"ana"},
			roles.Machine: {"ben"},
		})
		second := Advance(first, internal.Assignment{
			roles.Machine: {"ana"},
			roles.Slayer:  {"cat"},
		})

		_, ok := second.Last("ben")
		require.False(t, ok, "ben sat out the block and must be forgotten")
		require.False(t, second.CoolingDown("ana"))
		require.Empty(t, second.OutsideCooldown)
		k, ok := second.Last("ana")
		require.True(t, ok)
		require.Equal(t, roles.Machine, k)

		// input state untouched
		require.Equal(t, roles.Lanes, first.LastRole["ana"])
		require.True(t, first.CoolingDown("ana"))
	})

	t.Run("empty assignment resets the state", func(t *testing.T) {
		prev := Advance(Empty(), internal.Assignment{roles.Texter: {"ana", "ben"}})
		require.False(t, prev.IsEmpty())

		for _, a := range []internal.Assignment{nil, {}} {
			s := Advance(prev, a)
			require.Empty(t, s.LastRole)
			require.Empty(t, s.OutsideCooldown)
			require.True(t, s.IsEmpty())
		}
	})
}

func TestAllows(t *testing.T) {
	s := Advance(Empty(), internal.Assignment{
		roles.Lane1:   {"ana"},
		roles.Slayer:  {"ben"},
		roles.Machine: {"cat"},
	})

	require.False(t, s.Allows("ana", roles.Lane1), "same role twice")
	require.False(t, s.Allows("ana", roles.Lane2), "outside after outside")
	require.False(t, s.Allows("ana", roles.Texter), "outside after outside")
	require.True(t, s.Allows("ana", roles.Slayer))
	require.True(t, s.Allows("ana", roles.TexterSlayer))

	require.False(t, s.Allows("ben", roles.Slayer))
	require.True(t, s.Allows("ben", roles.Texter))

	require.True(t, s.Allows("dan", roles.Lanes), "unknown people are unconstrained")
	require.True(t, Empty().Allows("ana", roles.Lane1))
}

func TestStateYAML(t *testing.T) {
	s := Advance(Empty(), internal.Assignment{
		roles.Texter: {"zoe", "ana"},
	})
	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	var got struct {
		LastRole        map[string]string `yaml:"last_role"`
		OutsideCooldown []string          `yaml:"outside_cooldown"`
	}
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Equal(t, map[string]string{"ana": "texter", "zoe": "texter"}, got.LastRole)
	require.Equal(t, []string{"ana", "zoe"}, got.OutsideCooldown, "cooldown is sorted")
}
