package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"shiftrota/internal"
	"shiftrota/internal/roles"
	"shiftrota/internal/scheduler"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRun() *scheduler.Run {
	seed := uint64(9)
	return &scheduler.Run{
		ID:   "4f1c2a9e-0000-4000-8000-000000000000",
		Seed: &seed,
		Results: []internal.BlockResult{
			{
				Index: 0, Start: "12:00 PM", End: "1:00 PM",
				Roles: roles.NewSet(roles.FrontShots, roles.FrontMilk, roles.Lanes),
				Assignment: internal.Assignment{
					roles.Lanes:      {"Ana"},
					roles.FrontShots: {"Ben"},
					roles.FrontMilk:  {"Cat"},
				},
			},
			{
				Index: 1, Start: "1:00 PM", End: "2:00 PM",
				Roles: roles.NewSet(roles.FrontShots, roles.FrontMilk, roles.BackShots, roles.Lane1, roles.Lane2, roles.Texter, roles.Slayer),
				Assignment: internal.Assignment{
					roles.Lane1:      {"Ben"},
					roles.Lane2:      {"Cat"},
					roles.FrontShots: {"Ana"},
					roles.FrontMilk:  {"Dan"},
					roles.BackShots:  {"Eve"},
					roles.Texter:     {"Fay", "Gus"},
					roles.Slayer:     {"Hal"},
				},
			},
			{
				Index: 2, Start: "2:00 PM", End: "3:00 PM",
				Roles: roles.NewSet(roles.Lanes),
				Err: &internal.BlockError{
					Index: 2, Start: "2:00 PM", End: "3:00 PM", Err: internal.ErrInfeasible,
				},
			},
		},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Text{}).Render(&buf, sampleRun()))

	want := "12:00 PM - 1:00 PM \n" +
		"Lanes: Ana\n" +
		"Shots: Ben\n" +
		"Milk: Cat\n" +
		"\n" +
		" 1:00 PM - 2:00 PM \n" +
		"Lane 1: Ben\n" +
		"Lane 2: Cat\n" +
		"Back Shots: Eve\n" +
		"Front Shots: Ana\n" +
		"Front Milk: Dan\n" +
		"Texter: Fay, Gus\n" +
		"Slayer: Hal\n" +
		"\n" +
		" 2:00 PM - 3:00 PM \n" +
		"error: " + internal.ErrInfeasible.Error() + "\n"
	require.Equal(t, want, buf.String())
}

func TestTextEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Text{}).Render(&buf, &scheduler.Run{}))
	require.Equal(t, "(empty)\n", buf.String())
}

func TestStructured(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		r, err := New("yaml", Options{})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleRun()))

		var got runView
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Equal(t, "fail", got.Status)
		require.Len(t, got.Blocks, 3)
		require.Equal(t, []string{"Fay", "Gus"}, got.Blocks[1].Assignment[roles.Texter])
		require.Equal(t, internal.ErrInfeasible.Error(), got.Blocks[2].Error)
		require.Nil(t, got.Blocks[2].Assignment)
	})

	t.Run("json", func(t *testing.T) {
		r, err := New("json", Options{})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleRun()))

		var got runView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Equal(t, uint64(9), *got.Seed)
		require.Equal(t, []roles.Kind{roles.Lanes, roles.FrontShots, roles.FrontMilk}, got.Blocks[0].Roles)
		require.Equal(t, []string{"Ana"}, got.Blocks[0].Assignment[roles.Lanes])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := New("csv", Options{})
		require.ErrorContains(t, err, "csv")
	})
}
