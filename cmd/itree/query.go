package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genomelab/itree"
	"github.com/genomelab/itree/internal/bedio"
)

func newQueryCmd(verbose *bool) *cobra.Command {
	var bedPath, dbPath string

	cmd := &cobra.Command{
		Use:   "query [flags] chrom:start-end ...",
		Short: "Report stored intervals overlapping genomic regions",
		Example: `  itree query --bed genes.bed chr1:150547027-150552214
  itree query --db genes.duckdb chr12:25205246-25250929 chrX:1000-2000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			records, err := loadRecords(bedPath, dbPath)
			if err != nil {
				return err
			}
			index, err := itree.NewGrouped(chromKey, toIntervals(records)...)
			if err != nil {
				return err
			}
			logger.Info("index built",
				zap.Int("intervals", index.Len()),
				zap.Strings("chromosomes", index.Keys()))

			out := cmd.OutOrStdout()
			for _, arg := range args {
				region, err := parseRegion(arg)
				if err != nil {
					return err
				}
				hits := index.Search(region)
				logger.Info("query answered",
					zap.String("region", arg),
					zap.Int("hits", len(hits)))
				for _, hit := range hits {
					rec := hit.(bedio.Record)
					fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", rec.Chrom, rec.ChromStart, rec.ChromEnd, rec.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bedPath, "bed", "", "BED file of intervals")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB interval store")

	return cmd
}
