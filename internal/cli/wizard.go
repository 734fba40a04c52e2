package cli

import (
	"fmt"
	"strings"

	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// surveyHuhTheme returns a custom huh theme using the formatter palette.
func surveyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(surveyHuhTheme()).WithShowHelp(false)
}

// wizardImportPath asks for the questionnaire file to upload. The bound
// value starts empty on every call so the same file can be picked twice.
func wizardImportPath(result *string) *huh.Form {
	*result = ""
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Questionnaire file").
				Description("FHIR Questionnaire JSON to open").
				Placeholder("path/to/questionnaire.json").
				Value(result).
				Validate(requireText("a file path")),
		),
	)
}

// wizardSurveySetup asks for the canonical URL of the survey, prefilled with
// current or a freshly generated one.
func wizardSurveySetup(current string, result *string) *huh.Form {
	*result = domain.ResolveDefault(current, domain.NewCanonicalURL)
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Survey URL").
				Description("Canonical URL identifying this questionnaire").
				Value(result).
				Validate(domain.ValidateCanonicalURL),
		),
	)
}

// metadataValues is the editable subset of the draft metadata.
type metadataValues struct {
	Title   string
	Name    string
	Version string
}

// wizardMetadata edits title, name and version, prefilled from m.
func wizardMetadata(m domain.Metadata, result *metadataValues) *huh.Form {
	*result = metadataValues{Title: m.Title, Name: m.Name, Version: m.Version}
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&result.Title),
			huh.NewInput().
				Title("Name").
				Description("Computer-friendly name, letters, digits and underscores").
				Value(&result.Name).
				Validate(validateMachineName),
			huh.NewInput().
				Title("Version").
				Value(&result.Version),
		),
	)
}

func requireText(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter %s", what)
		}
		return nil
	}
}

// validateMachineName accepts empty or an identifier-like name.
func validateMachineName(s string) error {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return fmt.Errorf("name must start with a letter and use only letters, digits and underscores")
		}
	}
	return nil
}
