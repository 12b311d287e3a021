package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOStrategyPreview/config"
	"gitlab.com/aoterocom/AOStrategyPreview/database"
	dbmodels "gitlab.com/aoterocom/AOStrategyPreview/database/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models/analytics"
)

type memoryStore struct {
	strategies []dbmodels.Strategy
}

func (m memoryStore) GetStrategy(_ context.Context, id string) (dbmodels.Strategy, error) {
	for _, strategy := range m.strategies {
		if strategy.ID == id {
			return strategy, nil
		}
	}
	return dbmodels.Strategy{}, database.ErrStrategyNotFound
}

func (m memoryStore) ListStrategies(_ context.Context, userID string) ([]dbmodels.Strategy, error) {
	strategies := make([]dbmodels.Strategy, 0)
	for _, strategy := range m.strategies {
		if strategy.UserID == userID {
			strategies = append(strategies, strategy)
		}
	}
	return strategies, nil
}

var storedStrategies = memoryStore{strategies: []dbmodels.Strategy{
	{ID: "s-1", UserID: "u-1", Name: "Four Hour Swing", StrategyType: "Swing", Timeframe: "4h"},
	{ID: "s-2", UserID: "u-1", Name: "Broken", StrategyType: "breakout", Timeframe: "sometimes"},
}}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runPreviewer(t, &Previewer{openStore: openDBStore}, args...)
}

func runWithStore(t *testing.T, store StrategyStore, args ...string) (string, error) {
	t.Helper()
	return runPreviewer(t, &Previewer{openStore: func(config.Config) (StrategyStore, error) { return store, nil }}, args...)
}

func runPreviewer(t *testing.T, previewer *Previewer, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("logFile", filepath.Join(dir, "preview.log"))
	t.Setenv("telegramOutput", "false")

	out := &bytes.Buffer{}
	a := newApp(out, previewer)
	a.ExitErrHandler = func(*cli.Context, error) {}
	err := a.Run(append([]string{"strategy-preview", "--env", filepath.Join(dir, "missing.env")}, args...))
	return out.String(), err
}

func TestPreviewCommandPrintsReport(t *testing.T) {
	out, err := runApp(t, "preview", "--name", "Trend Rider", "--type", "momentum", "--bars", "60")
	require.NoError(t, err)

	var report analytics.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Trend Rider", report.Name)
	assert.Equal(t, models.StrategyTypeMomentum, report.StrategyType)
	assert.Len(t, report.Bars, 60)
	assert.GreaterOrEqual(t, len(report.Signals), 2)
}

func TestSignalsCommand(t *testing.T) {
	out, err := runApp(t, "signals", "--name", "Dip Buyer", "--type", "Mean Reversion", "--shape", "candle")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Dip Buyer seed "))
	assert.Contains(t, out, "mean-reversion")
	assert.Contains(t, out, "buy")
	assert.Contains(t, out, "sell")
}

func TestSeriesCommandUsesTimeframe(t *testing.T) {
	out, err := runApp(t, "series", "--name", "Hourly", "--bars", "5", "--timeframe", "1h", "--start", "2024-03-04")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "2024-03-04 00:00"))
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-04 01:00"))
}

func TestInvalidArguments(t *testing.T) {
	_, err := runApp(t, "preview", "--name", "x", "--start", "not-a-date")
	assert.Error(t, err)

	_, err = runApp(t, "series", "--name", "x", "--timeframe=-1h")
	assert.Error(t, err)

	_, err = runApp(t, "strategy")
	assert.Error(t, err)
}

func TestStrategyCommandUsesStoredTimeframe(t *testing.T) {
	out, err := runWithStore(t, storedStrategies, "strategy", "--id", "s-1", "--bars", "3", "--series")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "2024-01-01 00:00"))
	assert.True(t, strings.HasPrefix(lines[1], "2024-01-01 04:00"))
	assert.True(t, strings.HasPrefix(lines[2], "2024-01-01 08:00"))
}

func TestStrategyCommandPrintsReport(t *testing.T) {
	out, err := runWithStore(t, storedStrategies, "strategy", "--id", "s-1")
	require.NoError(t, err)

	var report analytics.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Four Hour Swing", report.Name)
	assert.Equal(t, models.StrategyTypeSwing, report.StrategyType)
	assert.Len(t, report.Bars, 60)
}

func TestStrategyCommandListsUserRows(t *testing.T) {
	out, err := runWithStore(t, storedStrategies, "strategy", "--user", "u-1")
	require.NoError(t, err)

	assert.Contains(t, out, "s-1\tFour Hour Swing\tSwing\t4h")
	assert.Contains(t, out, "s-2\tBroken")
}

func TestStrategyCommandErrors(t *testing.T) {
	_, err := runWithStore(t, storedStrategies, "strategy", "--id", "missing")
	assert.Error(t, err)

	_, err = runWithStore(t, storedStrategies, "strategy", "--id", "s-2")
	assert.Error(t, err)

	_, err = runApp(t, "strategy", "--id", "s-1")
	assert.Error(t, err, "database is disabled by default")
}
