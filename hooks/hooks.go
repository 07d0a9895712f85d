// Package hooks provides production-ready Hook and Logger implementations.
package hooks

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viktorchvatal/nanocv/core"
)

// ── Structured logger adapter ─────────────────────────────────────────────────

// SlogLogger wraps the standard library slog.Logger to satisfy core.Logger.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger creates a logger backed by slog.
func NewSlogLogger(l *slog.Logger) *SlogLogger { return &SlogLogger{log: l} }

func (s *SlogLogger) Debug(msg string, fields ...interface{}) { s.log.Debug(msg, fields...) }
func (s *SlogLogger) Info(msg string, fields ...interface{})  { s.log.Info(msg, fields...) }
func (s *SlogLogger) Warn(msg string, fields ...interface{})  { s.log.Warn(msg, fields...) }
func (s *SlogLogger) Error(msg string, fields ...interface{}) { s.log.Error(msg, fields...) }

// ── Logging hook ──────────────────────────────────────────────────────────────

// LoggingHook logs before/after each pipeline step.
type LoggingHook[T core.Element] struct {
	logger core.Logger
}

// NewLoggingHook creates a LoggingHook.
func NewLoggingHook[T core.Element](l core.Logger) *LoggingHook[T] {
	return &LoggingHook[T]{logger: l}
}

func (h *LoggingHook[T]) BeforeStep(_ context.Context, stepName string, img *core.Buffer[T]) {
	h.logger.Debug("pipeline.step.start",
		"step", stepName,
		"size", img.Size().String(),
	)
}

func (h *LoggingHook[T]) AfterStep(_ context.Context, stepName string, img *core.Buffer[T], d time.Duration, err error) {
	if err != nil {
		h.logger.Error("pipeline.step.error",
			"step", stepName,
			"duration_us", d.Microseconds(),
			"error", err.Error(),
		)
		return
	}
	out := "nil"
	if img != nil {
		out = img.Size().String()
	}
	h.logger.Debug("pipeline.step.done",
		"step", stepName,
		"duration_us", d.Microseconds(),
		"output", out,
	)
}

// ── In-memory metrics collector ───────────────────────────────────────────────

// Collector receives performance observations from pipeline hooks.
type Collector interface {
	RecordStepTime(stepName string, d time.Duration)
	RecordPixels(count int64)
	RecordError(stepName string)
}

// InMemoryMetrics accumulates metrics; safe for concurrent use.
type InMemoryMetrics struct {
	mu sync.RWMutex

	stepDurationsUs map[string]int64 // cumulative microseconds per step
	stepCalls       map[string]int64 // call count per step
	stepErrors      map[string]int64

	totalPixels int64
}

// NewInMemoryMetrics creates an empty metrics store.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		stepDurationsUs: make(map[string]int64),
		stepCalls:       make(map[string]int64),
		stepErrors:      make(map[string]int64),
	}
}

func (m *InMemoryMetrics) RecordStepTime(stepName string, d time.Duration) {
	m.mu.Lock()
	m.stepDurationsUs[stepName] += d.Microseconds()
	m.stepCalls[stepName]++
	m.mu.Unlock()
}

func (m *InMemoryMetrics) RecordPixels(count int64) {
	atomic.AddInt64(&m.totalPixels, count)
}

func (m *InMemoryMetrics) RecordError(stepName string) {
	m.mu.Lock()
	m.stepErrors[stepName]++
	m.mu.Unlock()
}

// MetricsSnapshot is an immutable point-in-time copy of metrics.
type MetricsSnapshot struct {
	StepDurationsUs map[string]int64
	StepCalls       map[string]int64
	StepErrors      map[string]int64
	TotalPixels     int64
}

// Snapshot returns a copy of current metrics.
func (m *InMemoryMetrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		StepDurationsUs: make(map[string]int64, len(m.stepDurationsUs)),
		StepCalls:       make(map[string]int64, len(m.stepCalls)),
		StepErrors:      make(map[string]int64, len(m.stepErrors)),
		TotalPixels:     atomic.LoadInt64(&m.totalPixels),
	}
	for k, v := range m.stepDurationsUs {
		snap.StepDurationsUs[k] = v
	}
	for k, v := range m.stepCalls {
		snap.StepCalls[k] = v
	}
	for k, v := range m.stepErrors {
		snap.StepErrors[k] = v
	}
	return snap
}

// ── Metrics hook ──────────────────────────────────────────────────────────────

// MetricsHook feeds pipeline events into a Collector.
type MetricsHook[T core.Element] struct {
	collector Collector
}

// NewMetricsHook creates a MetricsHook.
func NewMetricsHook[T core.Element](c Collector) *MetricsHook[T] {
	return &MetricsHook[T]{collector: c}
}

func (h *MetricsHook[T]) BeforeStep(_ context.Context, _ string, _ *core.Buffer[T]) {}

func (h *MetricsHook[T]) AfterStep(_ context.Context, stepName string, img *core.Buffer[T], d time.Duration, err error) {
	h.collector.RecordStepTime(stepName, d)
	if err != nil {
		h.collector.RecordError(stepName)
	}
	if img != nil {
		h.collector.RecordPixels(int64(img.Size().Area()))
	}
}
