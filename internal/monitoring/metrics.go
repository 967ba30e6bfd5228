// Package monitoring provides metrics collection for column and table operations.
package monitoring

import (
	"runtime"
	"sync"
	"time"

	"github.com/paveg/colframe/internal/config"
	"github.com/paveg/colframe/internal/errors"
)

// OperationMetrics represents performance metrics for a single operation.
type OperationMetrics struct {
	Operation     string        `json:"operation"`
	Duration      time.Duration `json:"duration"`
	RowsProcessed int64         `json:"rows_processed"`
	RowsProduced  int64         `json:"rows_produced"`
	MemoryUsed    int64         `json:"memory_used"`
	Failed        bool          `json:"failed"`
	ErrorCode     string        `json:"error_code,omitempty"`
}

// MetricsCollector collects and stores performance metrics for operations.
type MetricsCollector struct {
	mu      sync.RWMutex
	metrics []OperationMetrics
	enabled bool
}

var defaultCollector = NewMetricsCollector(config.GetGlobalConfig().MetricsCollection)

// Default returns the process-wide collector used by columns and tables.
func Default() *MetricsCollector {
	return defaultCollector
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector(enabled bool) *MetricsCollector {
	return &MetricsCollector{
		metrics: make([]OperationMetrics, 0),
		enabled: enabled,
	}
}

// IsEnabled returns whether metrics collection is enabled.
func (mc *MetricsCollector) IsEnabled() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.enabled
}

// RecordOperation executes fn and records its metrics. rows is the input row
// count; fn returns the number of rows it produced.
func (mc *MetricsCollector) RecordOperation(operation string, rows int, fn func() (int, error)) error {
	if !mc.IsEnabled() {
		_, err := fn()
		return err
	}

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	start := time.Now()
	produced, err := fn()
	duration := time.Since(start)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	var memoryUsed int64
	if memAfter.TotalAlloc > memBefore.TotalAlloc {
		memoryUsed = int64(memAfter.TotalAlloc - memBefore.TotalAlloc) //nolint:gosec // bounded by process allocation
	}

	metrics := OperationMetrics{
		Operation:     operation,
		Duration:      duration,
		RowsProcessed: int64(rows),
		RowsProduced:  int64(produced),
		MemoryUsed:    memoryUsed,
	}
	if err != nil {
		metrics.Failed = true
		metrics.ErrorCode = errors.CodeOf(err).String()
	}

	mc.mu.Lock()
	mc.metrics = append(mc.metrics, metrics)
	mc.mu.Unlock()

	return err
}

// GetMetrics returns a copy of all collected metrics.
func (mc *MetricsCollector) GetMetrics() []OperationMetrics {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	result := make([]OperationMetrics, len(mc.metrics))
	copy(result, mc.metrics)
	return result
}

// Clear removes all collected metrics.
func (mc *MetricsCollector) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.metrics = mc.metrics[:0]
}

// SetEnabled enables or disables metrics collection.
func (mc *MetricsCollector) SetEnabled(enabled bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.enabled = enabled
}

// GetSummary returns a summary of collected metrics.
func (mc *MetricsCollector) GetSummary() MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if len(mc.metrics) == 0 {
		return MetricsSummary{}
	}

	var totalDuration time.Duration
	var totalRows int64
	var failures int
	operationCounts := make(map[string]int)

	for _, metric := range mc.metrics {
		totalDuration += metric.Duration
		totalRows += metric.RowsProcessed
		operationCounts[metric.Operation]++
		if metric.Failed {
			failures++
		}
	}

	return MetricsSummary{
		TotalOperations: len(mc.metrics),
		TotalFailures:   failures,
		TotalDuration:   totalDuration,
		TotalRows:       totalRows,
		OperationCounts: operationCounts,
		AverageDuration: totalDuration / time.Duration(len(mc.metrics)),
	}
}

// MetricsSummary provides aggregate statistics for collected metrics.
type MetricsSummary struct {
	TotalOperations int            `json:"total_operations"`
	TotalFailures   int            `json:"total_failures"`
	TotalDuration   time.Duration  `json:"total_duration"`
	TotalRows       int64          `json:"total_rows"`
	OperationCounts map[string]int `json:"operation_counts"`
	AverageDuration time.Duration  `json:"average_duration"`
}
