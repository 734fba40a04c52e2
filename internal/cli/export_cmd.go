package cli

import (
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the saved draft as a FHIR questionnaire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Export.ExportFile(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d items to %s\n",
				formatter.StyleGreen.Render("Exported"), len(d.Items), args[0])
			return nil
		},
	}
}
