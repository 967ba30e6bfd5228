// Package colframe provides typed, null-aware columns and tables of equal-length
// columns backed by Apache Arrow.
//
// This package is the public API for the library. Columns are built from Go
// values and combined with element-wise operators into new columns; a boolean
// column then filters the rows of a Table:
//
//	price, _ := table.Column("price")
//	sales, _ := table.Column("sales")
//	shipped, _ := price.Add(5.0)
//	expensive, _ := shipped.Gt(10.0)
//	popular, _ := sales.Gt(3)
//	mask, _ := expensive.And(popular)
//	picked, err := table.Filter(mask)
//
// Every column and table holds Arrow memory and must be released when done.
package colframe

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/colframe/internal/config"
	"github.com/paveg/colframe/internal/dataframe"
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/logging"
	"github.com/paveg/colframe/internal/monitoring"
	"github.com/paveg/colframe/internal/series"
	"github.com/paveg/colframe/internal/version"
)

// Column is an immutable, homogeneously typed column with per-slot nulls.
type Column = series.Column

// Table is a set of named columns of equal length.
type Table = dataframe.Table

// Kind is the element kind of a Column.
type Kind = series.Kind

// Element kinds
const (
	KindText    = series.KindText
	KindBoolean = series.KindBoolean
	KindInteger = series.KindInteger
	KindFloat   = series.KindFloat
)

// Config holds library-wide settings for logging, metrics, memory and display.
type Config = config.Config

// Error is the error type returned by every fallible operation.
type Error = errors.DataFrameError

// Sentinel errors for errors.Is matching.
var (
	ErrEmptyInput           = errors.ErrEmptyInput
	ErrIndeterminateType    = errors.ErrIndeterminateType
	ErrUnsupportedType      = errors.ErrUnsupportedType
	ErrTypeMismatch         = errors.ErrTypeMismatch
	ErrLengthMismatch       = errors.ErrLengthMismatch
	ErrIndexOutOfRange      = errors.ErrIndexOutOfRange
	ErrUnsupportedOperation = errors.ErrUnsupportedOperation
	ErrInvalidKey           = errors.ErrInvalidKey
	ErrKeyNotFound          = errors.ErrKeyNotFound
)

// NewColumn creates a Column from dynamically typed values; nil is null.
// A nil allocator selects the configured default.
func NewColumn(values []any, mem memory.Allocator) (*Column, error) {
	return series.New(values, mem)
}

// ColumnOf creates a Column without nulls from a typed slice.
func ColumnOf[T series.Native](values []T, mem memory.Allocator) (*Column, error) {
	return series.Of(values, mem)
}

// NullableColumnOf creates a Column from a slice of pointers; nil pointers are null.
func NullableColumnOf[T series.Native](values []*T, mem memory.Allocator) (*Column, error) {
	return series.OfNullable(values, mem)
}

// NewTable creates a Table from named columns of equal length. The table keeps
// its own references, so the caller still releases the columns it created.
func NewTable(columns map[string]*Column) (*Table, error) {
	return dataframe.New(columns)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return config.NewConfig()
}

// LoadConfig reads a configuration file (.json, .yaml or .yml) and applies
// COLFRAME_* environment overrides on top of it. An empty path reads the
// environment only.
func LoadConfig(path string) (Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg = config.ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Configure validates cfg and installs it process-wide: logger, metrics
// collection and allocator selection. The returned function flushes and
// closes any remote log sink.
func Configure(cfg Config) (func(), error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	config.SetGlobalConfig(cfg)
	monitoring.Default().SetEnabled(cfg.MetricsCollection)
	closeLogs := logging.Configure(cfg)

	logging.Logger().Debug("colframe configured",
		"log_level", cfg.LogLevel,
		"metrics", cfg.MetricsCollection,
		"checked_allocator", cfg.CheckedAllocator)
	return closeLogs, nil
}

// MetricsSummary aggregates recorded operation metrics.
type MetricsSummary = monitoring.MetricsSummary

// Metrics returns aggregate statistics for recorded operations. Collection
// must be enabled through Config.MetricsCollection.
func Metrics() MetricsSummary {
	return monitoring.Default().GetSummary()
}

// ResetMetrics discards recorded operation metrics.
func ResetMetrics() {
	monitoring.Default().Clear()
}

// Version returns a one-line description of the library build.
func Version() string {
	return version.Info().String()
}
