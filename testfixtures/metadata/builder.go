// Package metadata provides a programmatic SP metadata generator for
// testing. It builds metadata documents with the same XML shapes the
// production parser consumes, so tests can exercise the full parse path
// without checked-in fixture files.
package metadata

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
)

const (
	mdNamespace    = "urn:oasis:names:tc:SAML:2.0:metadata"
	samlProtocolNS = "urn:oasis:names:tc:SAML:2.0:protocol"
)

// ACS describes one AssertionConsumerService element to emit.
type ACS struct {
	Binding          string
	Location         string
	ResponseLocation string
	Index            int
	IsDefault        bool
}

// SLO describes one SingleLogoutService element to emit.
type SLO struct {
	Binding          string
	Location         string
	ResponseLocation string
}

// SPBuilder builds SP metadata XML documents.
type SPBuilder struct {
	entityID   string
	validUntil time.Time
	acs        []ACS
	slo        []SLO
}

// NewSPBuilder creates a builder for the given entity.
func NewSPBuilder(entityID string) *SPBuilder {
	return &SPBuilder{entityID: entityID}
}

// WithValidUntil sets the descriptor's validUntil attribute.
func (b *SPBuilder) WithValidUntil(validUntil time.Time) *SPBuilder {
	b.validUntil = validUntil
	return b
}

// WithACS appends an AssertionConsumerService element.
func (b *SPBuilder) WithACS(acs ACS) *SPBuilder {
	b.acs = append(b.acs, acs)
	return b
}

// WithSLO appends a SingleLogoutService element.
func (b *SPBuilder) WithSLO(slo SLO) *SPBuilder {
	b.slo = append(b.slo, slo)
	return b
}

// Build serializes the metadata document.
func (b *SPBuilder) Build() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	entity := doc.CreateElement("EntityDescriptor")
	entity.CreateAttr("xmlns", mdNamespace)
	entity.CreateAttr("entityID", b.entityID)
	if !b.validUntil.IsZero() {
		entity.CreateAttr("validUntil", b.validUntil.UTC().Format(time.RFC3339))
	}

	descriptor := entity.CreateElement("SPSSODescriptor")
	descriptor.CreateAttr("protocolSupportEnumeration", samlProtocolNS)

	for _, slo := range b.slo {
		element := descriptor.CreateElement("SingleLogoutService")
		element.CreateAttr("Binding", slo.Binding)
		element.CreateAttr("Location", slo.Location)
		if slo.ResponseLocation != "" {
			element.CreateAttr("ResponseLocation", slo.ResponseLocation)
		}
	}

	for _, acs := range b.acs {
		element := descriptor.CreateElement("AssertionConsumerService")
		element.CreateAttr("Binding", acs.Binding)
		element.CreateAttr("Location", acs.Location)
		if acs.ResponseLocation != "" {
			element.CreateAttr("ResponseLocation", acs.ResponseLocation)
		}
		element.CreateAttr("index", strconv.Itoa(acs.Index))
		if acs.IsDefault {
			element.CreateAttr("isDefault", "true")
		}
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		panic(err) // etree serialization of an in-memory document cannot fail
	}
	return out
}

// Aggregate wraps entity documents into one EntitiesDescriptor document.
func Aggregate(entityDocs ...[]byte) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	entities := doc.CreateElement("EntitiesDescriptor")
	entities.CreateAttr("xmlns", mdNamespace)

	for _, raw := range entityDocs {
		child := etree.NewDocument()
		if err := child.ReadFromBytes(raw); err != nil {
			panic(err)
		}
		entities.AddChild(child.Root().Copy())
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		panic(err)
	}
	return out
}
