package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/fhir"
	"github.com/gabriel-vasile/mimetype"
)

type importService struct {
	observer UseCaseObserver
}

func NewImportService(observers ...UseCaseObserver) ImportService {
	return &importService{observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return s.ImportBytes(ctx, filepath.Base(path), data)
}

func (s *importService) ImportBytes(ctx context.Context, source string, data []byte) (res *ImportResult, err error) {
	fields := map[string]any{"source": source, "bytes": len(data)}
	defer observe(ctx, s.observer, "draft.import", time.Now().UTC(), fields, &err)

	mt := mimetype.Detect(data)
	fields["mime_type"] = mt.String()
	if !isJSONText(mt) {
		return nil, fmt.Errorf("%w: %s is %s, expected JSON", ErrUnsupportedFile, source, mt.String())
	}

	q, err := fhir.Parse(source, data)
	if err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range fhir.Validate(q) {
		warnings = append(warnings, w.Error())
	}

	d := fhir.ToDraft(q)
	fields["item_count"] = len(d.Items)
	fields["warnings"] = len(warnings)

	return &ImportResult{
		Draft:     d,
		Source:    source,
		MIMEType:  mt.String(),
		ItemCount: len(d.Items),
		Warnings:  warnings,
	}, nil
}

// isJSONText accepts application/json and any text/plain descendant.
// Malformed JSON sniffs as text/plain and is rejected later by the parser
// with a precise message.
func isJSONText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("application/json") || m.Is("text/plain") {
			return true
		}
	}
	return false
}
