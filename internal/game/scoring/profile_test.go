package scoring_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gearscore/internal/game/scoring"
)

var known = []string{"crit_damage", "rank_plants", "xp_plus"}

func TestParseWeightSpec_Forms(t *testing.T) {
	cases := []struct {
		in     string
		name   string
		weight float64
	}{
		{"2", "", 2},
		{"-1.5", "", -1.5},
		{".5", "", 0.5},
		{"attack:3", "attack", 3},
		{"Crit_Damage : -0.25", "crit_damage", -0.25},
		{"  heat:0  ", "heat", 0},
	}
	for _, tc := range cases {
		ws, err := scoring.ParseWeightSpec(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.name, ws.Name, tc.in)
		assert.Equal(t, tc.weight, ws.Weight, tc.in)
		assert.Equal(t, tc.in, ws.Raw)
	}
}

func TestParseWeightSpec_Malformed(t *testing.T) {
	for _, in := range []string{"", "attack", "attack:", "attack:x", "1.", "attack=2", "a-b:1", "--1"} {
		_, err := scoring.ParseWeightSpec(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, scoring.ErrMalformedWeightSpecifier), in)
		assert.False(t, errors.Is(err, scoring.ErrUnknownWeightKey), in)
	}
}

func TestDefaultProfile(t *testing.T) {
	p := scoring.DefaultProfile()
	assert.Equal(t, 1.0, p.Fallback)
	assert.Empty(t, p.Stat)
	assert.Equal(t, map[string]float64{
		"rank_plants": 0, "money_plus": 0, "drop_chance": 0, "xp_plus": 0, "xp_zero": 0,
	}, p.Modifier)
}

func TestIsStatName(t *testing.T) {
	for _, n := range []string{"hp", "attack", "defense", "focus", "heat", "cold", "shock", "wave"} {
		assert.True(t, scoring.IsStatName(n), n)
	}
	assert.False(t, scoring.IsStatName("defence"))
	assert.False(t, scoring.IsStatName("fallback"))
}

func TestBuildProfile_RoutesKeys(t *testing.T) {
	p, err := scoring.BuildProfile(scoring.DefaultProfile(),
		[]string{"ATTACK:2", "shock:-1", "crit_damage:4", "rank_plants:1", "0.5", "fallback:3"}, known)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"attack": 2, "shock": -1}, p.Stat)
	assert.Equal(t, 4.0, p.Modifier["crit_damage"])
	assert.Equal(t, 1.0, p.Modifier["rank_plants"])
	assert.Equal(t, 3.0, p.Fallback)
}

func TestBuildProfile_DoesNotMutateBase(t *testing.T) {
	base := scoring.DefaultProfile()
	_, err := scoring.BuildProfile(base, []string{"attack:2", "xp_plus:1"}, known)
	require.NoError(t, err)
	assert.Empty(t, base.Stat)
	assert.Equal(t, 0.0, base.Modifier["xp_plus"])
}

func TestBuildProfile_UnknownKey(t *testing.T) {
	_, err := scoring.BuildProfile(scoring.DefaultProfile(), []string{"attack:1", "defence:2"}, known)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scoring.ErrUnknownWeightKey))
	var uerr *scoring.UnknownWeightKeyError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "defence", uerr.Key)
}

func TestBuildProfile_MalformedIsDistinct(t *testing.T) {
	_, err := scoring.BuildProfile(scoring.DefaultProfile(), []string{"attack=1"}, known)
	assert.ErrorIs(t, err, scoring.ErrMalformedWeightSpecifier)
	assert.NotErrorIs(t, err, scoring.ErrUnknownWeightKey)
}

func TestWeightProfile_ModifierWeightCaseInsensitive(t *testing.T) {
	p := scoring.WeightProfile{Fallback: 9, Modifier: map[string]float64{"crit_damage": 2}}
	assert.Equal(t, 2.0, p.ModifierWeight("Crit_Damage"))
	assert.Equal(t, 9.0, p.ModifierWeight("other"))
}

func TestLoadProfile_MergesOverBase(t *testing.T) {
	p, err := scoring.LoadProfile(filepath.Join("testdata", "profile.yaml"), scoring.DefaultProfile(), known)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"attack": 2, "heat": 0.5}, p.Stat)
	assert.Equal(t, 1.5, p.Modifier["crit_damage"])
	assert.Equal(t, 0.25, p.Modifier["xp_plus"])
	assert.Equal(t, 0.0, p.Modifier["money_plus"])
	assert.Equal(t, 0.75, p.Fallback)
}

func TestLoadProfile_KeepsFallbackWhenOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stat:\n  focus: 2\n"), 0644))
	p, err := scoring.LoadProfile(path, scoring.DefaultProfile(), known)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Fallback)
}

func TestLoadProfile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	p, err := scoring.LoadProfile(path, scoring.DefaultProfile(), known)
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultProfile(), p)
}

func TestLoadProfile_RejectsUnknownStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stat:\n  speed: 2\n"), 0644))
	_, err := scoring.LoadProfile(path, scoring.DefaultProfile(), known)
	assert.ErrorIs(t, err, scoring.ErrUnknownWeightKey)
}

func TestLoadProfile_RejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights:\n  attack: 2\n"), 0644))
	_, err := scoring.LoadProfile(path, scoring.DefaultProfile(), known)
	assert.Error(t, err)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := scoring.LoadProfile("/nonexistent/profile.yaml", scoring.DefaultProfile(), known)
	assert.Error(t, err)
}

func TestProperty_WeightSpecRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.SampledFrom([]string{"hp", "Attack", "WAVE", "crit_damage"}).Draw(rt, "name")
		weight := float64(rapid.IntRange(-1000, 1000).Draw(rt, "weight")) / 8
		spec := fmt.Sprintf("%s:%g", name, weight)

		p, err := scoring.BuildProfile(scoring.DefaultProfile(), []string{spec}, known)
		require.NoError(rt, err)
		key := strings.ToLower(name)
		if scoring.IsStatName(key) {
			assert.Equal(rt, weight, p.StatWeight(key))
		} else {
			assert.Equal(rt, weight, p.ModifierWeight(key))
		}
	})
}
