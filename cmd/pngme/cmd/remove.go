package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MercMayhem/PngMe/pkg/commands"
)

func newRemoveCmd(state *cliState) *cobra.Command {
	var all bool

	removeCmd := &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Remove a message from a PNG file",
		Long: `Remove the first chunk of the given type and rewrite the file.

Example:
  pngme remove image.png ruSt
  pngme remove image.png ruSt --all --backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runner.Remove(commands.RemoveArgs{
				FilePath:  args[0],
				ChunkType: args[1],
				All:       all,
			})
		},
	}

	removeCmd.Flags().BoolVarP(&all, "all", "a", false, "remove every chunk of the type")
	return removeCmd
}
