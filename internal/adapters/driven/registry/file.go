package registry

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// FileServiceRegistry loads registered relying parties from a local YAML
// file. The file is read once via Load; refresh policy is the caller's.
type FileServiceRegistry struct {
	path    string
	logger  *zap.Logger
	metrics ports.MetricsRecorder

	mu      sync.RWMutex
	parties []domain.RegisteredParty
}

// registryFile represents the structure of the registry file.
type registryFile struct {
	Services []domain.RegisteredParty `yaml:"services"`
}

// FileOption configures a FileServiceRegistry.
type FileOption func(*FileServiceRegistry)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) FileOption {
	return func(r *FileServiceRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetricsRecorder sets the metrics recorder.
func WithMetricsRecorder(recorder ports.MetricsRecorder) FileOption {
	return func(r *FileServiceRegistry) {
		r.metrics = recorder
	}
}

// NewFileServiceRegistry creates a file-based service registry.
func NewFileServiceRegistry(path string, opts ...FileOption) *FileServiceRegistry {
	registry := &FileServiceRegistry{
		path:   path,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(registry)
	}
	return registry
}

// Load reads and parses the registry file.
func (r *FileServiceRegistry) Load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.recordLoad(false, 0)
		return fmt.Errorf("read registry file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		r.recordLoad(false, 0)
		return fmt.Errorf("parse registry file: %w", err)
	}

	for _, party := range file.Services {
		if party.ServiceID == "" {
			r.recordLoad(false, 0)
			return fmt.Errorf("registered party %q has no service id pattern", party.Name)
		}
	}

	r.mu.Lock()
	r.parties = file.Services
	r.mu.Unlock()

	r.recordLoad(true, len(file.Services))
	r.logger.Info("loaded service registry",
		zap.String("path", r.path),
		zap.Int("parties", len(file.Services)))
	return nil
}

// All returns every registered party in file order.
// The returned slice is a copy.
func (r *FileServiceRegistry) All() []domain.RegisteredParty {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.RegisteredParty(nil), r.parties...)
}

func (r *FileServiceRegistry) recordLoad(success bool, count int) {
	if r.metrics != nil {
		r.metrics.RecordRegistryLoad(success, count)
	}
}

// Ensure FileServiceRegistry implements ports.ServiceRegistry
var _ ports.ServiceRegistry = (*FileServiceRegistry)(nil)
