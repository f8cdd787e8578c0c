package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/spf13/cobra"
)

func packCmd() *cobra.Command {
	var (
		catalogPath string
		vehicle     packing.Vehicle
		opts        = packing.DefaultOptions()
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a catalog file into a vehicle",
		Long: `Pack reads a JSON product catalog, plans it into a vehicle of the
given dimensions, and prints the placements in load order followed by any
products that did not fit.`,
		Example: `  planner pack --catalog products.json --length 10 --breadth 4 --height 3
  planner pack --catalog products.json -l 10 -b 4 -H 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(catalogPath)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}

			products, err := catalog.Parse(data)
			if err != nil {
				return err
			}

			result, err := packing.New(opts).Pack(vehicle, products)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to the product catalog JSON file")
	cmd.Flags().Float64VarP(&vehicle.Length, "length", "l", 0, "Vehicle cargo length")
	cmd.Flags().Float64VarP(&vehicle.Breadth, "breadth", "b", 0, "Vehicle cargo breadth")
	cmd.Flags().Float64VarP(&vehicle.Height, "height", "H", 0, "Vehicle cargo height")
	cmd.Flags().IntVar(&opts.Batches, "batches", opts.Batches, "Number of distance batches")
	cmd.Flags().Float64Var(&opts.PaddingPerFragility, "padding", opts.PaddingPerFragility, "Padding fraction per fragility point")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")

	for _, name := range []string{"catalog", "length", "breadth", "height"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}

func writeResult(out io.Writer, result *packing.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tPRODUCT\tNAME\tFRAGILITY\tSIZE\tPOSITION")
	for i, p := range result.Placements {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%gx%gx%g\t(%g, %g, %g)\n",
			i+1,
			p.ProductID,
			p.ProductName,
			p.FragilityIndex,
			p.AdjustedSize.Length, p.AdjustedSize.Breadth, p.AdjustedSize.Height,
			p.Position.X, p.Position.Y, p.Position.Z,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := result.Summary
	fmt.Fprintf(out, "\npacked %d of %d products, utilization %.2f%%\n",
		s.PackedCount, s.TotalProducts, s.Utilization*100)

	for _, p := range result.Unplaced {
		fmt.Fprintf(out, "unplaced: %s %s (%gx%gx%g)\n",
			p.ProductID, p.ProductName, p.Length, p.Breadth, p.Height)
	}

	return nil
}
