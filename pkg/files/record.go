package files

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

//go:embed schema/cvdata.schema.json
var recordSchema string

var recordSchemaLoader = gojsonschema.NewStringLoader(recordSchema)

// Record is the persisted form of a CV. Older saves only carry template,
// html and inputs; Content and Presentation are nil for those.
type Record struct {
	Template     string               `json:"template"`
	HTML         string               `json:"html,omitempty"`
	Inputs       models.Identity      `json:"inputs"`
	Content      *models.Content      `json:"content,omitempty"`
	Presentation *models.Presentation `json:"presentation,omitempty"`
	SavedAt      time.Time            `json:"savedAt,omitempty"`
}

// NewRecord captures a document and its rendered markup for saving
func NewRecord(doc *models.Document, html string, savedAt time.Time) *Record {
	content := doc.Content.Clone()
	presentation := doc.Presentation
	return &Record{
		Template:     string(doc.Template),
		HTML:         html,
		Inputs:       doc.Identity,
		Content:      &content,
		Presentation: &presentation,
		SavedAt:      savedAt,
	}
}

// Encode serializes the record as JSON
func (r *Record) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode CV data: %w", err)
	}
	return data, nil
}

// DecodeRecord parses and schema-checks persisted data. Any failure wraps
// ErrCorrupt.
func DecodeRecord(data []byte) (*Record, error) {
	result, err := gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, strings.Join(msgs, "; "))
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &r, nil
}

// Document rebuilds a document from the record. Unknown templates fall back
// to classic; missing presentation uses defaults. The caller fills Content
// from HTML when the record predates structured content.
func (r *Record) Document(defaults models.Presentation, bounds models.FontBounds) *models.Document {
	doc := &models.Document{
		Template:     models.ParseTemplateID(r.Template),
		Identity:     r.Inputs,
		Presentation: defaults,
		Started:      true,
	}
	if r.Content != nil {
		doc.Content = r.Content.Clone()
	}
	if r.Presentation != nil {
		color := r.Presentation.AccentColor
		size := r.Presentation.FontSizePx
		if err := doc.SetPresentation(&color, nil, bounds); err != nil {
			doc.Presentation.AccentColor = defaults.AccentColor
		}
		if size > 0 {
			doc.SetPresentation(nil, &size, bounds)
		}
	}
	return doc
}

// Structured reports whether the record carries structured content
func (r *Record) Structured() bool {
	return r.Content != nil
}
