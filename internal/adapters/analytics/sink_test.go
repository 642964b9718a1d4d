package analytics

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
)

func newTestSink(t *testing.T, cfg *config.RuntimeConfig) (*Sink, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	sink := NewSink(cfg, slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	sink.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return sink, &logs
}

func readRecords(t *testing.T, path string) []Record {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		records = append(records, r)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestSink_AppendsJSONLines(t *testing.T) {
	dir := t.TempDir()
	sink, logs := newTestSink(t, &config.RuntimeConfig{
		DataDir:   dir,
		Analytics: config.AnalyticsConfig{Enabled: true, File: "events/analytics.jsonl"},
	})

	ctx := context.Background()
	sink.SendEvent(ctx, "Swap Submitted", map[string]any{"routing": "CLASSIC", "transaction_hash": "0xabc"})
	sink.SendEvent(ctx, "Swap Submitted", map[string]any{"routing": "CLASSIC"})

	records := readRecords(t, filepath.Join(dir, "events", "analytics.jsonl"))
	require.Len(t, records, 2)
	assert.Equal(t, "Swap Submitted", records[0].Event)
	assert.Equal(t, "0xabc", records[0].Properties["transaction_hash"])
	assert.Equal(t, 2024, records[0].Timestamp.Year())
	assert.Contains(t, logs.String(), "analytics event")
}

func TestSink_Disabled(t *testing.T) {
	dir := t.TempDir()
	sink, logs := newTestSink(t, &config.RuntimeConfig{
		DataDir:   dir,
		Analytics: config.AnalyticsConfig{File: "analytics.jsonl"},
	})

	sink.SendEvent(context.Background(), "Swap Submitted", nil)

	assert.NoFileExists(t, filepath.Join(dir, "analytics.jsonl"))
	assert.Contains(t, logs.String(), "analytics disabled")
}

func TestSink_WriteFailureIsLogged(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be
	target := filepath.Join(dir, "analytics.jsonl")
	require.NoError(t, os.Mkdir(target, 0755))

	sink, logs := newTestSink(t, &config.RuntimeConfig{
		DataDir:   dir,
		Analytics: config.AnalyticsConfig{Enabled: true, File: target},
	})

	assert.NotPanics(t, func() {
		sink.SendEvent(context.Background(), "Swap Submitted", map[string]any{"routing": "CLASSIC"})
	})
	assert.Contains(t, logs.String(), "failed to write analytics event")
}
