//go:build unit

package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kumar-cherry/cas/internal/core/domain"
	fixtures "github.com/kumar-cherry/cas/testfixtures/metadata"
)

func spDocument(entityID string) []byte {
	return fixtures.NewSPBuilder(entityID).
		WithACS(fixtures.ACS{Binding: domain.BindingHTTPPost, Location: entityID + "/acs"}).
		Build()
}

// TestStaticFacadeSource_HintFiltersFacades verifies the issuer hint acts as
// a metadata-selection filter.
func TestStaticFacadeSource_HintFiltersFacades(t *testing.T) {
	party := domain.RegisteredParty{ID: 1, Name: "sp", ServiceID: "*", Protocol: domain.ProtocolSAML}
	source := NewStaticFacadeSource()
	if err := source.RegisterXML(party, spDocument("https://sp.example.com")); err != nil {
		t.Fatalf("RegisterXML() error: %v", err)
	}

	facade, ok := source.Facade(party, "https://sp.example.com")
	if !ok || facade.EntityID() != "https://sp.example.com" {
		t.Errorf("Facade() = (%v, %v), want the registered facade", facade, ok)
	}

	if _, ok := source.Facade(party, "https://other.example.com"); ok {
		t.Error("Facade() should report absence for a non-matching hint")
	}
}

// TestStaticFacadeSource_UnknownParty verifies absence for unregistered
// parties.
func TestStaticFacadeSource_UnknownParty(t *testing.T) {
	source := NewStaticFacadeSource()
	party := domain.RegisteredParty{ID: 9, Protocol: domain.ProtocolSAML}

	if _, ok := source.Facade(party, "https://sp.example.com"); ok {
		t.Error("Facade() should report absence for unknown party")
	}
}

// TestStaticFacadeSource_EmptyHintMatchesAny verifies an empty hint selects
// the first registered facade.
func TestStaticFacadeSource_EmptyHintMatchesAny(t *testing.T) {
	party := domain.RegisteredParty{ID: 1, Protocol: domain.ProtocolSAML}
	source := NewStaticFacadeSource()
	if err := source.RegisterXML(party, spDocument("https://sp.example.com")); err != nil {
		t.Fatalf("RegisterXML() error: %v", err)
	}

	if _, ok := source.Facade(party, ""); !ok {
		t.Error("Facade() with empty hint should match any facade")
	}
}

// TestFileFacadeSource_LoadsFromDisk verifies metadata documents resolve
// from the party's metadata location.
func TestFileFacadeSource_LoadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sp.xml")
	if err := os.WriteFile(path, spDocument("https://sp.example.com"), 0o600); err != nil {
		t.Fatal(err)
	}
	party := domain.RegisteredParty{ID: 1, MetadataLocation: path, Protocol: domain.ProtocolSAML}
	source := NewFileFacadeSource()

	facade, ok := source.Facade(party, "https://sp.example.com")
	if !ok || facade.EntityID() != "https://sp.example.com" {
		t.Errorf("Facade() = (%v, %v)", facade, ok)
	}
}

// TestFileFacadeSource_MissingFileIsAbsence verifies a missing file is
// expected absence, not a panic or error.
func TestFileFacadeSource_MissingFileIsAbsence(t *testing.T) {
	party := domain.RegisteredParty{ID: 1, MetadataLocation: "/nonexistent/sp.xml", Protocol: domain.ProtocolSAML}
	source := NewFileFacadeSource()

	if _, ok := source.Facade(party, "https://sp.example.com"); ok {
		t.Error("Facade() should report absence for a missing file")
	}
}

// TestFileFacadeSource_NoLocationIsAbsence verifies a party without a
// metadata location never resolves.
func TestFileFacadeSource_NoLocationIsAbsence(t *testing.T) {
	party := domain.RegisteredParty{ID: 1, Protocol: domain.ProtocolSAML}
	source := NewFileFacadeSource()

	if _, ok := source.Facade(party, ""); ok {
		t.Error("Facade() should report absence without a metadata location")
	}
}
