package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bradbev/flatrect/src/region"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds <layout>",
	Short: "Print the rectangle enclosing every region",
	Long: `Folds the union over every region of the layout.  When all regions share
one rotation the result keeps it, otherwise the result is axis aligned.`,
	Args: cobra.ExactArgs(1),
	RunE: runBounds,
}

func runBounds(cmd *cobra.Command, args []string) error {
	layout, err := region.Load(region.Path(args[0]))
	if err != nil {
		return err
	}
	bounds := layout.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", layout.Name, bounds)
	fmt.Fprintf(cmd.OutOrStdout(), "center: %v\n", bounds.Center())
	return nil
}
