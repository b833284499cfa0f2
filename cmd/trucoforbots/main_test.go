package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/trucoforbots/internal/config"
	"github.com/lox/trucoforbots/internal/deck"
	"github.com/lox/trucoforbots/internal/game"
)

func TestEnvFileFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"duel"}, ".env"},
		{"separate value", []string{"--env-file", "local.env", "bots"}, "local.env"},
		{"equals", []string{"bots", "--env-file=ci.env"}, "ci.env"},
		{"dangling flag", []string{"--env-file"}, ".env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envFileFromArgs(tt.args))
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, loadEnvFile(""))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TRUCO_TEST_ENV_FILE=loaded\n"), 0o600))
	t.Setenv("TRUCO_TEST_ENV_FILE", "")
	require.NoError(t, os.Unsetenv("TRUCO_TEST_ENV_FILE"))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "loaded", os.Getenv("TRUCO_TEST_ENV_FILE"))
}

func TestParseRounds(t *testing.T) {
	rounds, err := parseRounds("won, L,drew")
	assert.Error(t, err, "three finished tricks leave no card to play")
	assert.Nil(t, rounds)

	rounds, err = parseRounds("won,L")
	require.NoError(t, err)
	assert.Equal(t, []game.RoundResult{game.Won, game.Lost}, rounds)

	rounds, err = parseRounds("")
	require.NoError(t, err)
	assert.Empty(t, rounds)

	_, err = parseRounds("won,maybe")
	assert.ErrorContains(t, err, "maybe")
}

func TestDecideIntel(t *testing.T) {
	cmd := DecideCmd{
		Vira:          "5h",
		Hand:          "6c3s",
		OpponentCard:  "3d",
		Rounds:        "lost",
		Score:         4,
		OpponentScore: 9,
		HandPoints:    3,
	}

	intel, err := cmd.intel()
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCard("5h"), intel.Vira)
	assert.Equal(t, deck.MustParseCards("6c3s"), intel.Hand)
	opponent, ok := intel.Opponent()
	require.True(t, ok)
	assert.Equal(t, deck.MustParseCard("3d"), opponent)
	assert.Equal(t, 1, intel.Trick())
	assert.Equal(t, 4, intel.Score)
	assert.Equal(t, 9, intel.OpponentScore)
	assert.Equal(t, 3, intel.HandPoints)
}

func TestDecideIntelRejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name string
		cmd  DecideCmd
		want string
	}{
		{"bad vira", DecideCmd{Vira: "9h", Hand: "6c2d3s"}, "invalid vira"},
		{"bad hand", DecideCmd{Vira: "5h", Hand: "6c2x"}, "invalid hand"},
		{"too many cards", DecideCmd{Vira: "5h", Hand: "6c2d3s4d"}, "1 to 3 cards"},
		{"tricks mismatch", DecideCmd{Vira: "5h", Hand: "6c2d3s", Rounds: "won"}, "do not match"},
		{"bad opponent card", DecideCmd{Vira: "5h", Hand: "6c2d3s", OpponentCard: "zz"}, "invalid opponent card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.intel()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDuelFlagsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cmd := DuelCmd{Hands: 20, Seed: 7}
	cmd.apply(cfg)

	assert.Equal(t, 20, cfg.Duel.Hands)
	assert.Equal(t, int64(7), cfg.Duel.Seed)
	assert.Equal(t, config.DefaultConfig().Duel.Workers, cfg.Duel.Workers)
	assert.Equal(t, "5s", cfg.Duel.Timeout)
}
