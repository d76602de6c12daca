package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genomelab/itree"
)

func newPrintCmd() *cobra.Command {
	var (
		bedPath, dbPath string
		opts            itree.PrintOptions
	)

	cmd := &cobra.Command{
		Use:   "print [flags]",
		Short: "Pretty-print the per-chromosome trees",
		Example: `  itree print --bed genes.bed
  itree print --bed genes.bed --minmax --height`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(bedPath, dbPath)
			if err != nil {
				return err
			}
			index, err := itree.NewGrouped(chromKey, toIntervals(records)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, chrom := range index.Keys() {
				tree := index.Tree(chrom)
				fmt.Fprintf(out, ">%s (%d intervals)\n", chrom, tree.Len())
				fmt.Fprint(out, tree.Pretty(opts))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bedPath, "bed", "", "BED file of intervals")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB interval store")
	cmd.Flags().BoolVar(&opts.TypeName, "type", false, "Show the node type name")
	cmd.Flags().BoolVar(&opts.AttrNames, "attrs", false, "Show attribute names")
	cmd.Flags().BoolVar(&opts.MinMax, "minmax", false, "Show cached subtree bounds")
	cmd.Flags().BoolVar(&opts.Height, "height", false, "Show node heights")

	return cmd
}
