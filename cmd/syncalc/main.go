package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/syncalc/dataset"
	"github.com/katalvlaran/syncalc/hierarchy"
	"github.com/katalvlaran/syncalc/pattern"
	"github.com/katalvlaran/syncalc/syncat"
	"github.com/katalvlaran/syncalc/syncstore"
)

// cacheName keys the enumeration report inside the store; bump only on
// a deliberate break with previously cached runs.
const cacheName = "syncretisms"

var (
	// Global flags
	verbose     bool
	cacheDir    string
	datasetPath string
	comma       string

	// Logger
	logger *zap.Logger
)

// rootCmd runs the whole calculator and prints the report.
var rootCmd = &cobra.Command{
	Use:   "syncalc",
	Short: "syncalc - person/number syncretism typology calculator",
	Long: `syncalc enumerates every closed ordering algebra over the six
person×number cells for each built-in hierarchy pairing, canonicalizes
the algebras into syncretism patterns, and reports the result.

With --dataset, the generated typology is diffed against the observed
patterns in the file (over-/under-generation), and each observed pattern
is checked for monotonicity against every base algebra.

With --cache, the enumeration report is memoized in a badger database
and reused on the next run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&cacheDir, "cache", "", "badger cache directory (empty disables caching)")
	rootCmd.Flags().StringVar(&datasetPath, "dataset", "", "observed-pattern CSV to diff against")
	rootCmd.Flags().StringVar(&comma, "comma", ",", "dataset field delimiter")
}

// computeReport is the pure recomputation path: the full enumeration
// over the built-in inventories, independent of any cache.
func computeReport() (*syncat.Report, error) {
	return syncat.Enumerate(hierarchy.Persons(), hierarchy.Numbers())
}

// loadReport goes through the cache when one is configured.
func loadReport() (*syncat.Report, error) {
	if cacheDir == "" {
		logger.Debug("cache disabled, recomputing")

		return computeReport()
	}

	store, err := syncstore.Open(cacheDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("closing cache store", zap.Error(cerr))
		}
	}()

	logger.Debug("reading through cache", zap.String("dir", cacheDir), zap.String("name", cacheName))

	return syncstore.NewCache(store).Report(cacheName, computeReport)
}

func runReport(cmd *cobra.Command, args []string) error {
	report, err := loadReport()
	if err != nil {
		return err
	}

	printReport(cmd, report)

	if datasetPath == "" {
		return nil
	}

	// Observed inventory: load, canonicalize, diff, test monotonicity.
	delim := []rune(comma)
	if len(delim) != 1 {
		return fmt.Errorf("--comma must be a single character, got %q", comma)
	}
	rows, err := dataset.LoadFile(datasetPath, dataset.WithComma(delim[0]))
	if err != nil {
		return err
	}
	observed := dataset.Patterns(rows)
	logger.Info("loaded observed patterns",
		zap.String("path", datasetPath),
		zap.Int("rows", len(rows)),
		zap.Int("distinct", len(observed)))

	printDiff(cmd, syncat.Compare(report.Total, observed))

	bases, err := syncat.BaseAlgebras(hierarchy.Persons(), hierarchy.Numbers())
	if err != nil {
		return err
	}
	printMonotonicity(cmd, syncat.MonotonicityReport(bases, observed))

	return nil
}

func printReport(cmd *cobra.Command, report *syncat.Report) {
	keys := make([]syncat.PairKey, 0, len(report.Patterns))
	for key := range report.Patterns {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	cmd.Println("Generated syncretism patterns")
	for _, key := range keys {
		cmd.Printf("  %-8s %d patterns\n", key, len(report.Patterns[key]))
	}
	cmd.Printf("  %-8s %d patterns\n", "total", len(report.Total))
	cmd.Println()
	cmd.Println(joinPatterns(report.Total))
}

func printDiff(cmd *cobra.Command, d syncat.Diff) {
	cmd.Println()
	cmd.Printf("Attested (%d):       %s\n", len(d.Attested), joinPatterns(d.Attested))
	cmd.Printf("Overgenerated (%d):  %s\n", len(d.Overgenerated), joinPatterns(d.Overgenerated))
	cmd.Printf("Undergenerated (%d): %s\n", len(d.Undergenerated), joinPatterns(d.Undergenerated))
}

func printMonotonicity(cmd *cobra.Command, report map[pattern.Pattern][]string) {
	pats := make([]pattern.Pattern, 0, len(report))
	for p := range report {
		pats = append(pats, p)
	}
	sort.Slice(pats, func(i, j int) bool { return pats[i].String() < pats[j].String() })

	cmd.Println()
	cmd.Println("Monotonicity of observed patterns")
	for _, p := range pats {
		bases := report[p]
		if len(bases) == 0 {
			cmd.Printf("  %s  monotonic over no base algebra\n", p)
			continue
		}
		cmd.Printf("  %s  %s\n", p, strings.Join(bases, " "))
	}
}

func joinPatterns(pats []pattern.Pattern) string {
	parts := make([]string, len(pats))
	for i, p := range pats {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
