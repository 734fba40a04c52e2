package formatter

import (
	"fmt"
	"strings"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/repository"
	"github.com/cardinalkit/surveybuilder/internal/service"
)

// FormatRestorePrompt renders the body of the resume-previous-survey modal.
// Absent fields render as empty values.
func FormatRestorePrompt(title, name, version string, itemCount int) string {
	var b strings.Builder
	b.WriteString(StyleFg.Render("An unfinished survey was found. Resume it?") + "\n\n")
	b.WriteString(RawField("title", title) + "\n")
	b.WriteString(RawField("name", name) + "\n")
	b.WriteString(RawField("version", version) + "\n")
	b.WriteString(Field("items", fmt.Sprintf("%d", itemCount)) + "\n\n")
	b.WriteString(StyleGreen.Render("[y] Yes") + "   " + StyleRed.Render("[n] No"))
	return RenderBox("Resume draft", b.String())
}

// FormatDraftSummary renders the stored snapshot summary for `draft show`.
func FormatDraftSummary(s *repository.DraftSummary) string {
	if s == nil {
		return Dim("No draft stored.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Stored draft") + "\n")
	b.WriteString(Field("title", s.Title) + "\n")
	b.WriteString(Field("name", s.Name) + "\n")
	b.WriteString(Field("version", s.Version) + "\n")
	b.WriteString(Field("items", fmt.Sprintf("%d", s.ItemCount)) + "\n")
	b.WriteString(Field("saved", HumanTimestamp(s.UpdatedAt)) + "\n")
	b.WriteString(Field("format", s.Encoding) + "\n")
	return b.String()
}

// FormatDraftHeader renders the metadata block shown above the item tree.
func FormatDraftHeader(m domain.Metadata) string {
	title := m.Title
	if title == "" {
		title = Dim("Untitled survey")
	} else {
		title = Bold(title)
	}
	var b strings.Builder
	b.WriteString(title + "  " + StatusPill(m.Status) + "\n")
	b.WriteString(Field("name", m.Name) + "\n")
	b.WriteString(Field("version", m.Version) + "\n")
	b.WriteString(Field("url", m.URL) + "\n")
	return b.String()
}

// FormatItemTree renders the draft's question tree in display order.
func FormatItemTree(d *domain.Draft) string {
	if !d.InProgress() {
		return Dim("No questions yet.") + "\n"
	}
	return RenderTree(itemTree(d, d.Order, 1))
}

func itemTree(d *domain.Draft, order []domain.OrderItem, level int) []TreeItem {
	// Order entries without a matching item are not rendered, so IsLast has
	// to be computed against the visible siblings only.
	visible := make([]domain.OrderItem, 0, len(order))
	for _, o := range order {
		if _, ok := d.Items[o.LinkID]; ok {
			visible = append(visible, o)
		}
	}

	var out []TreeItem
	for i, o := range visible {
		it := d.Items[o.LinkID]
		out = append(out, TreeItem{
			Title:    itemTitle(it),
			Level:    level,
			IsLast:   i == len(visible)-1,
			Required: it.Required,
			Badge:    string(it.Type),
			BadgeFmt: ItemTypeStyle(it.Type),
		})
		out = append(out, itemTree(d, o.Items, level+1)...)
	}
	return out
}

func itemTitle(it domain.Item) string {
	text := Truncate(it.Text, 60)
	if text == "" {
		text = Dim(it.LinkID)
	}
	if it.Prefix != "" {
		text = StyleDim.Render(it.Prefix+" ") + text
	}
	return text
}

// FormatImportResult renders the outcome of an import.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder
	title := domain.CoalesceStr(res.Draft.Metadata.Title, res.Draft.Metadata.Name, "untitled")
	b.WriteString(StyleGreen.Render("Imported ") + Bold(title) +
		Dim(fmt.Sprintf(" (%d items from %s)", res.ItemCount, res.Source)) + "\n")
	b.WriteString(FormatWarnings(res.Warnings))
	return b.String()
}

// FormatWarnings renders non-fatal import warnings as a list.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d warning(s):", len(warnings))) + "\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  - ") + w + "\n")
	}
	return b.String()
}
