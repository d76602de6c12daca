package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genomelab/itree/internal/bedio"
	"github.com/genomelab/itree/internal/store"
)

func newImportCmd(verbose *bool) *cobra.Command {
	var bedPath, dbPath string

	cmd := &cobra.Command{
		Use:     "import --bed <file> --db <file>",
		Short:   "Import a BED file into a DuckDB interval store",
		Example: `  itree import --bed genes.bed --db genes.duckdb`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			records, err := bedio.ReadAll(bedPath)
			if err != nil {
				return err
			}
			logger.Info("bed file parsed",
				zap.String("path", bedPath),
				zap.Int("records", len(records)))

			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.CreateSchema(); err != nil {
				return err
			}
			if err := s.InsertRecords(records); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d intervals into %s\n", len(records), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&bedPath, "bed", "", "BED file to import")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB store to write")
	cmd.MarkFlagRequired("bed")
	cmd.MarkFlagRequired("db")

	return cmd
}
