package metadata

import (
	"sync"

	"go.uber.org/zap"

	"github.com/kumar-cherry/cas/internal/core/domain"
	"github.com/kumar-cherry/cas/internal/core/ports"
)

// StaticFacadeSource serves pre-parsed facades keyed by registered party.
// Intended for tests and for deployments where metadata is resolved ahead
// of time by the external caching layer.
type StaticFacadeSource struct {
	logger *zap.Logger

	mu      sync.RWMutex
	facades map[int64][]*SPMetadataFacade
}

// NewStaticFacadeSource creates an empty StaticFacadeSource.
func NewStaticFacadeSource(opts ...SourceOption) *StaticFacadeSource {
	options := applyOptions(opts)
	return &StaticFacadeSource{
		logger:  options.logger,
		facades: make(map[int64][]*SPMetadataFacade),
	}
}

// Register associates facades with a registered party, replacing any
// previous registration for the same party.
func (s *StaticFacadeSource) Register(party domain.RegisteredParty, facades ...*SPMetadataFacade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facades[party.ID] = append([]*SPMetadataFacade(nil), facades...)
}

// RegisterXML parses metadata XML and associates the resulting facades with
// the party.
func (s *StaticFacadeSource) RegisterXML(party domain.RegisteredParty, data []byte) error {
	facades, err := ParseSPMetadata(data)
	if err != nil {
		return err
	}
	s.Register(party, facades...)
	return nil
}

// Facade returns the party's facade matching the issuer hint. Absence is
// expected and reported as false, never as an error.
func (s *StaticFacadeSource) Facade(party domain.RegisteredParty, issuerHint string) (ports.PeerMetadataFacade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, facade := range s.facades[party.ID] {
		if matchesHint(facade, issuerHint) {
			return facade, true
		}
	}
	s.logger.Debug("no facade for issuer hint",
		zap.String("party", party.Name),
		zap.String("issuer", issuerHint))
	return nil, false
}

// matchesHint applies the issuer hint as a metadata-selection filter. An
// empty hint selects any facade the party's registration covers.
func matchesHint(facade *SPMetadataFacade, issuerHint string) bool {
	if issuerHint == "" {
		return true
	}
	return facade.EntityID() == issuerHint
}

// Ensure StaticFacadeSource implements ports.FacadeSource
var _ ports.FacadeSource = (*StaticFacadeSource)(nil)
