package metadata

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// FileFacadeSource resolves facades from metadata documents on disk, using
// each party's MetadataLocation as the file path. Parsed documents are kept
// per path and re-read when the file changes on disk. This is a convenience
// for local deployments; remote fetch and trust verification belong to the
// external metadata layer.
type FileFacadeSource struct {
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]*fileEntry
}

type fileEntry struct {
	modTime time.Time
	facades []*SPMetadataFacade
}

// NewFileFacadeSource creates a FileFacadeSource.
func NewFileFacadeSource(opts ...SourceOption) *FileFacadeSource {
	options := applyOptions(opts)
	return &FileFacadeSource{
		logger: options.logger,
		cache:  make(map[string]*fileEntry),
	}
}

// Facade loads the party's metadata file and returns the facade matching
// the issuer hint. A missing or unparseable file, or a hint the document
// does not cover, is expected absence: logged and reported as false.
func (s *FileFacadeSource) Facade(party domain.RegisteredParty, issuerHint string) (ports.PeerMetadataFacade, bool) {
	if party.MetadataLocation == "" {
		return nil, false
	}

	facades, err := s.load(party.MetadataLocation)
	if err != nil {
		s.logger.Debug("metadata file unavailable for party",
			zap.String("party", party.Name),
			zap.String("path", party.MetadataLocation),
			zap.Error(err))
		return nil, false
	}

	for _, facade := range facades {
		if matchesHint(facade, issuerHint) {
			return facade, true
		}
	}
	return nil, false
}

func (s *FileFacadeSource) load(path string) ([]*SPMetadataFacade, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		return entry.facades, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	facades, err := ParseSPMetadata(data)
	if err != nil {
		return nil, err
	}

	s.cache[path] = &fileEntry{modTime: info.ModTime(), facades: facades}
	s.logger.Debug("loaded metadata file",
		zap.String("path", path),
		zap.Int("facades", len(facades)))
	return facades, nil
}

// Ensure FileFacadeSource implements ports.FacadeSource
var _ ports.FacadeSource = (*FileFacadeSource)(nil)
