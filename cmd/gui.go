package cmd

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/internal/app"
)

var guiScript string

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the interactive modeler",
	Long: `Open a window with the modeler. With --script the script is replayed
at startup and again whenever the file is saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{
			Config: cfg,
			Logger: logger,
			Script: guiScript,
		})
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
	guiCmd.Flags().StringVarP(&guiScript, "script", "s", "", "Script to replay on startup and on change")
}
