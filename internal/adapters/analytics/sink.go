package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/trebuchet-org/swapguard/internal/domain/config"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// Record is one line of the analytics log
type Record struct {
	Event      string         `json:"event"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Sink logs analytics events and, when a file is configured, appends them
// to it as JSON lines. Failures are logged and never returned.
type Sink struct {
	enabled bool
	path    string
	mu      sync.Mutex
	now     func() time.Time
	log     *slog.Logger
}

// NewSink creates a sink from the [analytics] config section. A relative
// file path is taken from the data dir.
func NewSink(cfg *config.RuntimeConfig, log *slog.Logger) *Sink {
	path := cfg.Analytics.File
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.DataDir, path)
	}
	return &Sink{
		enabled: cfg.Analytics.Enabled,
		path:    path,
		now:     time.Now,
		log:     log.With("component", "analytics"),
	}
}

// SendEvent records the event
func (s *Sink) SendEvent(ctx context.Context, name string, properties map[string]any) {
	if !s.enabled {
		s.log.Debug("analytics disabled, dropping event", "event", name)
		return
	}

	s.log.Info("analytics event", "event", name, "properties", properties)
	if s.path == "" {
		return
	}

	line, err := json.Marshal(Record{Event: name, Timestamp: s.now().UTC(), Properties: properties})
	if err != nil {
		s.log.Warn("failed to encode analytics event", "event", name, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.append(append(line, '\n')); err != nil {
		s.log.Warn("failed to write analytics event", "event", name, "path", s.path, "error", err)
	}
}

func (s *Sink) append(line []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Ensure the sink implements the interface
var _ usecase.AnalyticsSink = (*Sink)(nil)
