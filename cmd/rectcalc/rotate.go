package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bradbev/flatrect/src/region"
)

var flagOut string

var rotateCmd = &cobra.Command{
	Use:   "rotate <layout> <degrees>",
	Short: "Rotate a layout about the center of its bounds",
	Long: `Rotates every region of the layout about the center of the layout bounds
and prints the result.  Positive degrees turn clockwise on screen, negative
angles need a "--" so they aren't read as flags.

Examples:
  rectcalc rotate tiles.json 90
  rectcalc rotate tiles.json --out tiles-rotated.yaml -- -45`,
	Args: cobra.ExactArgs(2),
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().StringVar(&flagOut, "out", "", "Save the rotated layout to this path")
}

func runRotate(cmd *cobra.Command, args []string) error {
	degrees, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid degrees %q: %w", args[1], err)
	}
	layout, err := region.Load(region.Path(args[0]))
	if err != nil {
		return err
	}

	rotated := layout.Rotate(degrees)
	out := cmd.OutOrStdout()
	for _, name := range rotated.Names() {
		r, _ := rotated.Find(name)
		fmt.Fprintf(out, "%s  %v\n", name, r.Bounds)
	}

	if flagOut != "" {
		if err := region.Save(region.Path(flagOut), rotated); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %s\n", flagOut)
	}
	return nil
}
