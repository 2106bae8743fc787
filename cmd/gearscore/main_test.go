package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gearscore/internal/report"
)

const fixture = "../../internal/game/equip/testdata/item-database.json"

// execute runs the CLI in-process and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRank_JSONOrdersByScore(t *testing.T) {
	out, err := execute(t, "rank", "--data", fixture, "--no-scale", "--format", "json", "--type", "head", "--type", "feet")
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Order)
	assert.Equal(t, "(Item ID 3)", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Steel Helm", entries[1].Name)
	assert.Greater(t, entries[0].Score, entries[1].Score)
}

func TestRank_RootRunsRank(t *testing.T) {
	out, err := execute(t, "--data", fixture, "--no-scale", "--format", "json")
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 2)
}

func TestRank_UnobtainableFlag(t *testing.T) {
	out, err := execute(t, "rank", "--data", fixture, "--no-scale", "--format", "json", "-t", "arm", "-u")
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "-Debug Gauntlet", entries[0].Name)
}

func TestRank_LocaleFlag(t *testing.T) {
	out, err := execute(t, "rank", "--data", fixture, "--no-scale", "--format", "json", "-t", "feet", "--locale", "xx_MOD")
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Boots of Modding", entries[0].Name)
}

func TestRank_ScalesToLevel(t *testing.T) {
	out, err := execute(t, "rank", "--data", fixture, "--level", "50", "--format", "json", "-t", "head")
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Scaled)
	assert.Equal(t, 50, entries[0].EvalLevel)
}

func TestRank_InvalidLevel(t *testing.T) {
	_, err := execute(t, "rank", "--data", fixture, "--level", "120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level 120")
}

func TestRank_UnknownWeightKey(t *testing.T) {
	_, err := execute(t, "rank", "--data", fixture, "-w", "luck:2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "luck")
}

func TestRank_MalformedWeight(t *testing.T) {
	_, err := execute(t, "rank", "--data", fixture, "-w", "attack=2")
	require.Error(t, err)
}

func TestRank_TopAndTable(t *testing.T) {
	out, err := execute(t, "rank", "--data", fixture, "--no-scale", "-n", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SCORE")
	assert.Contains(t, lines[1], "(Item ID 3)")
}

func TestRank_MissingData(t *testing.T) {
	_, err := execute(t, "rank", "--data", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestModifiers(t *testing.T) {
	out, err := execute(t, "modifiers", "--data", fixture)
	require.NoError(t, err)
	assert.Equal(t, "Known modifiers: crit_damage, rank_plants, xp_plus\n", out)
}

func TestExtract_WritesEquips(t *testing.T) {
	gameDir := t.TempDir()
	dataDir := filepath.Join(gameDir, "assets", "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	raw, err := os.ReadFile(fixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "item-database.json"), raw, 0644))

	outPath := filepath.Join(t.TempDir(), "equips.json")
	out, err := execute(t, "extract", gameDir, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "extracted 3 equips")

	out, err = execute(t, "modifiers", "--data", outPath)
	require.NoError(t, err)
	assert.Equal(t, "Known modifiers: crit_damage, rank_plants, xp_plus\n", out)
}

func TestExtract_RequiresGameDir(t *testing.T) {
	_, err := execute(t, "extract")
	assert.Error(t, err)
}
