package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genomelab/itree"
	"github.com/genomelab/itree/internal/bench"
)

func newBenchCmd(verbose *bool) *cobra.Command {
	var (
		minSize, maxSize, step int
		searchFrac, removeFrac float64
		seed                   int64
		repeat, parallel       int
		backendName            string
	)

	cmd := &cobra.Command{
		Use:   "bench <bed-file>",
		Short: "Benchmark the index implementations against each other",
		Long: `Benchmark insert, search and remove latencies for each index backend over
a sweep of tree sizes sampled from a BED file. Every backend is validated
against the linear-scan oracle before it is timed.`,
		Example: `  itree bench genes.bed --min-size 1000 --max-size 10000 --step 1000
  itree bench genes.bed --backend balanced --parallel 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			if backendName == "" {
				backendName = viper.GetString("bench.backend")
			}

			records, err := loadRecords(args[0], "")
			if err != nil {
				return err
			}
			ivs := toIntervals(records)

			backends := bench.Backends()
			if backendName != "" && backendName != "all" {
				b, err := bench.BackendByName(backendName)
				if err != nil {
					return err
				}
				backends = []bench.Backend{b}
			}

			rng := rand.New(rand.NewSource(seed))
			runner := bench.NewRunner(repeat)
			runner.SetLogger(logger)

			out := cmd.OutOrStdout()
			var results []bench.Result
			for size := minSize; size <= maxSize; size += step {
				if size > len(ivs) {
					return fmt.Errorf("tree size %d exceeds the %d available intervals", size, len(ivs))
				}
				insert := sample(rng, ivs, size)
				searches := sample(rng, insert, int(float64(size)*searchFrac))
				removes := sample(rng, insert, int(float64(size)*removeFrac))

				for _, b := range backends {
					res, err := runner.Run(b, insert, searches, removes)
					if err != nil {
						return err
					}
					results = append(results, res...)

					if parallel > 0 {
						pres, err := runner.RunParallel(b, insert, searches, parallel)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "parallel search: backend=%s size=%d workers=%d queries=%d hits=%d elapsed=%s\n",
							pres.Backend, size, pres.Workers, pres.Queries, pres.Hits, pres.Elapsed)
					}
				}
			}

			bench.WriteReport(out, results)
			return nil
		},
	}

	cmd.Flags().IntVar(&minSize, "min-size", 1000, "Smallest tree size in the sweep")
	cmd.Flags().IntVar(&maxSize, "max-size", 5000, "Largest tree size in the sweep")
	cmd.Flags().IntVar(&step, "step", 2000, "Tree size increment")
	cmd.Flags().Float64Var(&searchFrac, "search-frac", 0.5, "Fraction of intervals sampled for search")
	cmd.Flags().Float64Var(&removeFrac, "remove-frac", 0.5, "Fraction of intervals sampled for removal")
	cmd.Flags().Int64Var(&seed, "seed", 121080, "Sampling seed")
	cmd.Flags().IntVar(&repeat, "repeat", 12, "Repetitions of each operation set")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Also measure concurrent search with this many workers")
	cmd.Flags().StringVar(&backendName, "backend", "", "Backend to benchmark: balanced, legacy, list or all")

	return cmd
}

// sample returns n intervals drawn without replacement.
func sample(rng *rand.Rand, ivs []itree.Interval, n int) []itree.Interval {
	if n > len(ivs) {
		n = len(ivs)
	}
	out := make([]itree.Interval, n)
	for i, j := range rng.Perm(len(ivs))[:n] {
		out[i] = ivs[j]
	}
	return out
}
