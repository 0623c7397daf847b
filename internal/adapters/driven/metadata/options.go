package metadata

import "go.uber.org/zap"

type sourceOptions struct {
	logger *zap.Logger
}

// SourceOption configures a facade source.
type SourceOption func(*sourceOptions)

// WithLogger sets the logger for a facade source.
func WithLogger(logger *zap.Logger) SourceOption {
	return func(o *sourceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []SourceOption) *sourceOptions {
	options := &sourceOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
