package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MercMayhem/PngMe/pkg/commands"
)

func newEncodeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <file> <chunk-type> <message> [output-file]",
		Short: "Encode a message into a PNG file",
		Long: `Encode a message into a new chunk of a PNG file.

The chunk type must be exactly four ASCII letters. Lowercase first and third
letters ("ruSt") keep the chunk ancillary and private so image viewers ignore it.
The file is rewritten in place unless an output file is given.

Example:
  pngme encode image.png ruSt "a secret message"
  pngme encode image.png ruSt "a secret message" out.png`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			encodeArgs := commands.EncodeArgs{
				FilePath:  args[0],
				ChunkType: args[1],
				Message:   args[2],
			}
			if len(args) == 4 {
				encodeArgs.OutputFile = args[3]
			}
			return state.runner.Encode(encodeArgs)
		},
	}
}
