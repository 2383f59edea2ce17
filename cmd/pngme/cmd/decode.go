package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MercMayhem/PngMe/pkg/commands"
)

func newDecodeCmd(state *cliState) *cobra.Command {
	var all bool

	decodeCmd := &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Decode a message from a PNG file",
		Long: `Decode the message stored in the first chunk of the given type.

Example:
  pngme decode image.png ruSt
  pngme decode image.png ruSt --all`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runner.Decode(commands.DecodeArgs{
				FilePath:  args[0],
				ChunkType: args[1],
				All:       all,
			})
		},
	}

	decodeCmd.Flags().BoolVarP(&all, "all", "a", false, "decode every chunk of the type")
	return decodeCmd
}
