// Package missionfile reads ConOps documents from YAML or JSON, fills in
// the defaults the wire formats may omit, and checks the structural rules
// a document must satisfy before the engine sees it.
package missionfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shamsu/conops/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects the wire codec.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath infers the codec from a file extension; anything that is
// not .json is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads and decodes the document at path. The result has defaults
// applied and activity IDs assigned but is not yet validated; call
// Validate before handing it to anything that trusts it.
func Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mission file: %w", err)
	}
	doc, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Decode unmarshals one document. Decoding starts from a defaults-filled
// document so absent fields keep their defaults while explicit values,
// including explicit zeros, win.
func Decode(data []byte, format Format) (*domain.Document, error) {
	doc := domain.NewDocument()
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	Normalize(&doc)
	return &doc, nil
}

// Normalize fills element-level defaults and assigns IDs to activities
// that arrived without one. An ID present in the input is never
// regenerated, so references held by callers stay stable across reloads.
func Normalize(doc *domain.Document) {
	for i := range doc.Phases {
		if doc.Phases[i].Duration == 0 {
			doc.Phases[i].Duration = 1
		}
	}
	for i := range doc.Activities {
		if doc.Activities[i].Duration == 0 {
			doc.Activities[i].Duration = 1
		}
		if doc.Activities[i].ID == "" {
			doc.Activities[i].ID = uuid.New().String()
		}
	}
	for i := range doc.WindowMasks {
		if doc.WindowMasks[i].Mode == "" {
			doc.WindowMasks[i].Mode = domain.MaskAllow
		}
		if doc.WindowMasks[i].SourceType == "" {
			doc.WindowMasks[i].SourceType = domain.SourceGroundContact
		}
	}
	for i := range doc.SourceRules {
		if doc.SourceRules[i].Mode == "" {
			doc.SourceRules[i].Mode = domain.MaskAllow
		}
		if doc.SourceRules[i].SourceType == "" {
			doc.SourceRules[i].SourceType = domain.SourceGroundContact
		}
	}
	for i := range doc.ManualTimeBlocks {
		if doc.ManualTimeBlocks[i].Mode == "" {
			doc.ManualTimeBlocks[i].Mode = domain.MaskAllow
		}
		if doc.ManualTimeBlocks[i].SourceType == "" {
			doc.ManualTimeBlocks[i].SourceType = domain.SourceManual
		}
	}
}
