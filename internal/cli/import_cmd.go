package cli

import (
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a FHIR questionnaire as the saved draft",
		Long: `Import a FHIR Questionnaire JSON file and save it as the local
draft, replacing any previous one. The next interactive start offers it
for editing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)

			if app.IsInteractive != nil && app.IsInteractive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Importing questionnaire…")
				defer stop()
			}

			res, err := app.Import.ImportFile(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Drafts.Save(ctx, res.Draft); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
