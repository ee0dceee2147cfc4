package roles

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalog(t *testing.T) {
	t.Run("outside roles", func(t *testing.T) {
		var outside []Kind
		for _, k := range All() {
			if k.Outside() {
				outside = append(outside, k)
			}
		}
		require.Equal(t, []Kind{Lanes, Lane1, Lane2, Texter}, outside)
		require.False(t, TexterSlayer.Outside())
	})

	t.Run("overflow roles", func(t *testing.T) {
		var overflow []Kind
		for _, k := range All() {
			if k.Overflow() {
				overflow = append(overflow, k)
			}
		}
		require.Equal(t, []Kind{Texter, Slayer}, overflow)
	})

	t.Run("every kind has a label", func(t *testing.T) {
		for _, k := range All() {
			require.NotEqual(t, string(k), k.Label(), "kind %s", k)
		}
	})

	t.Run("output order covers the catalog", func(t *testing.T) {
		require.ElementsMatch(t, All(), OutputOrder())
	})
}

func TestParse(t *testing.T) {
	k, err := Parse(" lane1 ")
	require.NoError(t, err)
	require.Equal(t, Lane1, k)

	_, err = Parse("barista")
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestSetYAML(t *testing.T) {
	var s Set
	require.NoError(t, yaml.Unmarshal([]byte("[texter, machine, lanes]"), &s))
	require.Equal(t, []Kind{Machine, Lanes, Texter}, s.Enabled())

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	require.Equal(t, "- machine\n- lanes\n- texter\n", string(out))

	err = yaml.Unmarshal([]byte("[machine, espresso]"), &s)
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestAutoToggles(t *testing.T) {
	tests := []struct {
		n    int
		want []Kind
	}{
		{0, []Kind{}},
		{1, []Kind{}},
		{2, []Kind{Machine, Lanes}},
		{3, []Kind{Lanes, FrontShots, FrontMilk}},
		{4, []Kind{Lane1, Lane2, FrontShots, FrontMilk}},
		{5, []Kind{Lane1, Lane2, FrontShots, FrontMilk, TexterSlayer}},
		{6, []Kind{Lane1, Lane2, FrontShots, FrontMilk, Texter, Slayer}},
		{7, []Kind{Lane1, Lane2, FrontShots, FrontMilk, Texter, Slayer}},
		{9, []Kind{Lane1, Lane2, BackShots, BackMilk, FrontShots, FrontMilk, Texter, Slayer}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, AutoToggles(tt.n).Enabled(), "headcount %d", tt.n)
	}
}

func TestLabelFor(t *testing.T) {
	front := NewSet(FrontShots, FrontMilk, Lanes)
	require.Equal(t, "Shots", LabelFor(FrontShots, front))
	require.Equal(t, "Milk", LabelFor(FrontMilk, front))
	require.Equal(t, "Lanes", LabelFor(Lanes, front))

	split := front.With(BackShots)
	require.Equal(t, "Front Shots", LabelFor(FrontShots, split))
	require.Equal(t, "Front Milk", LabelFor(FrontMilk, split))
}
