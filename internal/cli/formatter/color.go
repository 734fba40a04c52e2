package formatter

import (
	"fmt"
	"strings"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ItemTypeStyle returns the style used for an item type badge.
func ItemTypeStyle(t domain.ItemType) lipgloss.Style {
	switch t {
	case domain.ItemGroup:
		return StylePurple
	case domain.ItemDisplay:
		return StyleDim
	case domain.ItemChoice, domain.ItemOpenChoice, domain.ItemBoolean:
		return StyleGreen
	case domain.ItemDate, domain.ItemDateTime, domain.ItemTime:
		return StyleYellow
	default:
		if !t.Known() {
			return StyleRed
		}
		return StyleBlue
	}
}

// StatusPill returns a colored indicator for a questionnaire status.
func StatusPill(status string) string {
	switch status {
	case "active":
		return StyleGreen.Render("● Active")
	case "draft", "":
		return StyleYellow.Render("○ Draft")
	case "retired":
		return StyleDim.Render("✖ Retired")
	default:
		return StyleDim.Render(status)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Error renders an error line in red.
func Error(err error) string {
	return StyleRed.Render("Error: ") + err.Error()
}
