package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bradbev/flatrect/src/region"
)

var flagInteger bool

var bboxCmd = &cobra.Command{
	Use:   "bbox <layout>",
	Short: "Print each region's axis aligned bounding box",
	Args:  cobra.ExactArgs(1),
	RunE:  runBBox,
}

func init() {
	bboxCmd.Flags().BoolVar(&flagInteger, "integer", false, "Grow boxes outwards to whole units")
}

func runBBox(cmd *cobra.Command, args []string) error {
	layout, err := region.Load(region.Path(args[0]))
	if err != nil {
		return err
	}

	// Calculate column width
	maxNameLen := len("Region")
	for _, name := range layout.Names() {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %s\n", maxNameLen, "Region", "Bounding box")
	for _, name := range layout.Names() {
		r, _ := layout.Find(name)
		box := r.Bounds.BoundingBox()
		if flagInteger {
			box = r.Bounds.IntegerBoundingBox()
		}
		fmt.Fprintf(out, "%-*s  %v\n", maxNameLen, name, box)
	}
	return nil
}
