package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/fhir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuestionnaireJSON = `{
  "resourceType": "Questionnaire",
  "url": "http://example.org/fhir/Questionnaire/sleep",
  "title": "Sleep", "name": "sleep", "version": "3",
  "item": [
    {"linkId": "q1", "type": "boolean", "text": "Did you sleep well?"},
    {"linkId": "g1", "type": "group", "text": "Details", "item": [
      {"linkId": "q2", "type": "integer", "text": "Hours"}
    ]}
  ]
}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestImportService_ImportFile_ValidQuestionnaire(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewImportService(obs)
	path := writeFile(t, "sleep.json", []byte(sampleQuestionnaireJSON))

	res, err := svc.ImportFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "sleep.json", res.Source)
	assert.Equal(t, 3, res.ItemCount)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "Sleep", res.Draft.Metadata.Title)
	assert.Equal(t, domain.ItemInteger, res.Draft.Items["q2"].Type)
	assert.Equal(t, "g1", res.Draft.Order[1].LinkID)

	ev := obs.last()
	assert.Equal(t, "draft.import", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 3, ev.Fields["item_count"])
}

func TestImportService_EmptyObjectYieldsEmptyDraft(t *testing.T) {
	res, err := NewImportService().ImportBytes(context.Background(), "empty.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, res.ItemCount)
	assert.Equal(t, domain.NewDraft(), res.Draft)
}

func TestImportService_MalformedTextIsParseError(t *testing.T) {
	obs := &recordingObserver{}
	_, err := NewImportService(obs).ImportBytes(context.Background(), "bad.json", []byte("not json"))

	var perr *fhir.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "bad.json", perr.Source)
	assert.False(t, obs.last().Success)
}

func TestImportService_BinaryIsUnsupported(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	_, err := NewImportService().ImportBytes(context.Background(), "logo.png", png)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestImportService_WarningsDoNotFailImport(t *testing.T) {
	data := []byte(`{"resourceType":"Questionnaire","item":[{"linkId":"a","type":"slider"},{"linkId":"a","type":"string"}]}`)
	res, err := NewImportService().ImportBytes(context.Background(), "w.json", data)
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 2)
	assert.Equal(t, 1, res.ItemCount)
}

func TestImportService_MissingFile(t *testing.T) {
	_, err := NewImportService().ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestImportService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewImportService().ImportFile(ctx, "whatever.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportService_WritesStoredDraft(t *testing.T) {
	drafts := newTestDraftService(t)
	ctx := context.Background()

	imported, err := NewImportService().ImportBytes(ctx, "sleep.json", []byte(sampleQuestionnaireJSON))
	require.NoError(t, err)
	require.NoError(t, drafts.Save(ctx, imported.Draft))

	out := filepath.Join(t.TempDir(), "out.json")
	d, err := NewExportService(drafts).ExportFile(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 3, len(d.Items))

	reimported, err := NewImportService().ImportFile(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, imported.Draft, reimported.Draft)
}

func TestExportService_NoDraft(t *testing.T) {
	_, err := NewExportService(newTestDraftService(t)).ExportFile(context.Background(), filepath.Join(t.TempDir(), "x.json"))
	assert.ErrorIs(t, err, ErrNoDraft)
}
