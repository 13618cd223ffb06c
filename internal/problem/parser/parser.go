package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-rddlgen/pkg/model"
	"github.com/goliatone/go-rddlgen/pkg/problem"
)

// Parser implements problem.Parser for YAML and JSON problem descriptions.
// JSON parses through the YAML decoder, so one code path covers both.
type Parser struct{}

// Ensure the implementation satisfies the public interface.
var _ problem.Parser = (*Parser)(nil)

// New constructs a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse decodes the document payload into the typed model. Unknown fields are
// rejected so typos in problem files surface as errors instead of silently
// dropped sections.
func (p *Parser) Parse(ctx context.Context, doc problem.Document) (model.Document, error) {
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return model.Document{}, errors.New("problem parser: document is empty")
	}

	var out model.Document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return model.Document{}, fmt.Errorf("problem parser: decode %s: %w", location(doc), err)
	}

	if strings.TrimSpace(out.Domain.Name) == "" {
		return model.Document{}, fmt.Errorf("problem parser: %s declares no domain name", location(doc))
	}
	return out, nil
}

func location(doc problem.Document) string {
	if loc := doc.Location(); loc != "" {
		return loc
	}
	return "document"
}
