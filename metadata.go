package cas

import (
	"github.com/kumar-cherry/cas/internal/adapters/driven/metadata"
)

// Re-export metadata facade adapter
type SPMetadataFacade = metadata.SPMetadataFacade
type StaticFacadeSource = metadata.StaticFacadeSource
type FileFacadeSource = metadata.FileFacadeSource
type FacadeSourceOption = metadata.SourceOption

var (
	NewSPMetadataFacade    = metadata.NewSPMetadataFacade
	ParseSPMetadata        = metadata.ParseSPMetadata
	NewStaticFacadeSource  = metadata.NewStaticFacadeSource
	NewFileFacadeSource    = metadata.NewFileFacadeSource
	WithFacadeSourceLogger = metadata.WithLogger
)
