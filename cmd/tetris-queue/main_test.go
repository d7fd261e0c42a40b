package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/tetris-queue/pkg/settings"
	"github.com/huynhanx03/tetris-queue/pkg/timer"
)

func testConfig(t *testing.T) settings.Config {
	t.Helper()
	cfg := settings.Default()
	cfg.Logger.FileLogName = filepath.Join(t.TempDir(), "run.log")
	return cfg
}

func TestRun_Session(t *testing.T) {
	clock := timer.FixedTimer{At: time.Unix(1700000000, 0)}
	var out bytes.Buffer

	err := run(context.Background(), testConfig(t), clock, strings.NewReader("1\n2\n2\nx\n0\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Initializing the piece queue with 5 pieces...")
	assert.Contains(t, got, "Next piece ID: 5")
	assert.Contains(t, got, "(5/5)")
	assert.Contains(t, got, "PIECE PLAYED:")
	assert.Contains(t, got, "PIECE ADDED:")
	assert.Contains(t, got, "queue is full")
	assert.Contains(t, got, "INVALID INPUT")
	assert.Contains(t, got, "See you soon!")
}

func TestRun_DeterministicForFixedClock(t *testing.T) {
	clock := timer.FixedTimer{At: time.Unix(42, 0)}
	var a, b bytes.Buffer

	require.NoError(t, run(context.Background(), testConfig(t), clock, strings.NewReader("0\n"), &a))
	require.NoError(t, run(context.Background(), testConfig(t), clock, strings.NewReader("0\n"), &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Queue.Capacity = 0
	cfg.Queue.InitialFill = 0

	err := run(context.Background(), cfg, timer.System, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_InvalidKinds(t *testing.T) {
	cfg := testConfig(t)
	cfg.Queue.Kinds = "IQ"

	err := run(context.Background(), cfg, timer.System, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown kind")
}
