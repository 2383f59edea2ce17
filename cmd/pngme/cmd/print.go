package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MercMayhem/PngMe/pkg/commands"
)

func newPrintCmd(state *cliState) *cobra.Command {
	var typesOnly bool

	printCmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Print the chunks of a PNG file",
		Long: `Print every chunk of a PNG file in order with its length, CRC and
property flags.

Example:
  pngme print image.png
  pngme print image.png --types-only
  pngme print image.png -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runner.Print(commands.PrintArgs{
				FilePath:  args[0],
				TypesOnly: typesOnly,
			})
		},
	}

	printCmd.Flags().BoolVarP(&typesOnly, "types-only", "t", false, "print only chunk types, one per line")
	return printCmd
}
