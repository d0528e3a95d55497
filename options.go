package annotile

import "log/slog"

type options struct {
	layerID          string
	defaultSymbol    string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Manager constructor behavior.
type Option func(*options)

// WithLayerID configures the layer name under which point features are
// written into live tiles.
//
// If an empty string is passed, DefaultLayerID is used.
func WithLayerID(layerID string) Option {
	return func(o *options) {
		if layerID == "" {
			layerID = DefaultLayerID
		}
		o.layerID = layerID
	}
}

// WithDefaultSymbol configures the sprite name used for points added with an
// empty symbol.
func WithDefaultSymbol(symbol string) Option {
	return func(o *options) {
		o.defaultSymbol = symbol
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &annotile.BasicMetricsCollector{}
//	am := annotile.New(annotile.WithMetricsCollector(metrics))
//	// ... use am ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Avg latency: %dns\n", stats.AddCount, stats.AddAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := annotile.NewJSONLogger(slog.LevelInfo)
//	am := annotile.New(annotile.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		layerID:          DefaultLayerID,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
