package cmd

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/internal/editor"
)

var viewScript string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the editor with a software-rendered scene",
	Long: `Open the fyne editor: the scene is rendered without OpenGL next to an
edit bar with mode buttons, the extrusion height and camera reset.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.Run(editor.Options{
			Config: cfg,
			Logger: logger,
			Script: viewScript,
		})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVarP(&viewScript, "script", "s", "", "Script to replay before the window opens")
}
