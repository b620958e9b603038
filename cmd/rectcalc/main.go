// rectcalc inspects region layouts stored as JSON or YAML files.
//
// Usage:
//
//	rectcalc bounds <layout>             - Print the union of every region
//	rectcalc bbox <layout>               - Print each region's axis aligned bounding box
//	rectcalc rotate <layout> <degrees>   - Rotate the layout about its center
//
// Global flags:
//
//	--dir <path>  - Directory layouts are read from and saved to (default: .)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradbev/flatrect/src/region"
)

var (
	// Global flags
	flagDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rectcalc",
	Short: "Inspect and transform rotated region layouts",
	Long: `rectcalc loads a layout of named, possibly rotated, rectangles and
reports on it.

Examples:
  rectcalc bounds tiles.json
  rectcalc bbox --dir ./content selection.yaml
  rectcalc rotate tiles.json 90 --out tiles-rotated.json`,
	SilenceUsage:      true,
	PersistentPreRunE: setupStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", ".", "Directory layouts are read from and saved to")

	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(bboxCmd)
	rootCmd.AddCommand(rotateCmd)
}

func setupStore(cmd *cobra.Command, args []string) error {
	region.Reset()
	if err := region.RegisterFileSystem(os.DirFS(flagDir), 0); err != nil {
		return err
	}
	return region.RegisterWritableFileSystem(region.NewWritableFS(flagDir))
}
