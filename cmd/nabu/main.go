// Command nabu builds and queries structural fingerprints of PDF documents:
// build populates a fingerprint store from a manifest of PDFs; score
// compares a manifest of query PDFs against everything already stored.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/toejamhoney/nabu-go/internal/driver"
	"github.com/toejamhoney/nabu-go/internal/ledger"
	"github.com/toejamhoney/nabu-go/internal/store"
)

func defaultProcs() int {
	n := 2 * runtime.NumCPU() / 3
	if n < 1 {
		n = 1
	}
	return n
}

func main() {
	var (
		procs   int
		chunk   int
		graphdb string
		jobdb   string
		dbdir   string
		parser  string
		thresh  float64
		update  bool
		logdir  string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "nabu",
		Short: "Structural fingerprinting and similarity scoring for PDF documents",
	}
	rootCmd.PersistentFlags().IntVar(&procs, "procs", defaultProcs(), "number of parallel workers")
	rootCmd.PersistentFlags().IntVar(&chunk, "chunk", 1, "tasks processed by a worker before it is replaced")
	rootCmd.PersistentFlags().StringVar(&graphdb, "graphdb", "graphdb", "fingerprint store subdirectory name under --dbdir")
	rootCmd.PersistentFlags().StringVar(&jobdb, "jobdb", "jobdb", "job ledger subdirectory name under --dbdir")
	rootCmd.PersistentFlags().StringVar(&dbdir, "dbdir", "db", "database directory")
	rootCmd.PersistentFlags().StringVar(&parser, "parser", "pdfminer", "PDF object-tree parser to use")
	rootCmd.PersistentFlags().StringVar(&logdir, "logdir", "logs", "directory for the run log")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "prefix run-log lines with DEBUG (no per-document parse timings are logged)")

	buildCmd := &cobra.Command{
		Use:   "build <manifest>",
		Short: "Parse, fingerprint, and store every PDF named in manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := openLog(logdir, debug)
			if err != nil {
				return err
			}
			defer closeLog()

			parseFn, err := resolveParser(parser)
			if err != nil {
				return err
			}

			s, err := store.Open(store.Options{DataDir: filepath.Join(dbdir, graphdb)})
			if err != nil {
				return fmt.Errorf("nabu: opening fingerprint store: %w", err)
			}
			defer s.Close()

			l, err := ledger.Open(ledger.Options{DataDir: filepath.Join(dbdir, jobdb), SyncWrites: true})
			if err != nil {
				logger.Printf("warning: opening job ledger: %v; continuing without resumption", err)
				l = nil
			} else {
				defer l.Close()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errs, err := driver.RunBuild(ctx, driver.BuildConfig{
				ManifestPath: args[0],
				Workers:      procs,
				Chunk:        chunk,
				Update:       update,
				Store:        s,
				Ledger:       l,
				Parse:        parseFn,
			})
			if err != nil {
				return err
			}
			for _, e := range errs {
				logger.Printf("document failed: %v", e)
			}
			if len(errs) > 0 {
				logger.Printf("build finished with %d document failure(s)", len(errs))
			}
			return nil
		},
	}
	buildCmd.Flags().BoolVar(&update, "update", false, "ignore the ledger's completed set and redo everything")
	rootCmd.AddCommand(buildCmd)

	var persist bool
	scoreCmd := &cobra.Command{
		Use:   "score <manifest>",
		Short: "Score every PDF named in manifest against the fingerprint store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := openLog(logdir, debug)
			if err != nil {
				return err
			}
			defer closeLog()

			parseFn, err := resolveParser(parser)
			if err != nil {
				return err
			}

			s, err := store.Open(store.Options{DataDir: filepath.Join(dbdir, graphdb)})
			if err != nil {
				return fmt.Errorf("nabu: opening fingerprint store: %w", err)
			}
			defer s.Close()

			queries, err := driver.ParseManifest(args[0])
			if err != nil {
				return err
			}

			for _, path := range queries {
				if err := driver.RunScore(context.Background(), driver.ScoreConfig{
					QueryPath: path,
					QueryName: filepath.Base(path),
					Workers:   procs,
					Threshold: thresh,
					Store:     s,
					Parse:     parseFn,
					Persist:   persist,
				}, os.Stdout); err != nil {
					logger.Printf("scoring %s failed: %v", path, err)
				}
			}
			return nil
		},
	}
	scoreCmd.Flags().Float64Var(&thresh, "thresh", 0, "Canberra distance cutoff; 0 reports every family")
	scoreCmd.Flags().BoolVar(&persist, "persist", false, "also commit each query document's fingerprint to the store")
	rootCmd.AddCommand(scoreCmd)

	clusterCmd := &cobra.Command{
		Use:   "cluster",
		Short: "Reserved: dendrogram-based family clustering (not implemented in this build)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("nabu: cluster is reserved, not implemented in this build")
		},
	}
	rootCmd.AddCommand(clusterCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveParser(name string) (driver.ParseFunc, error) {
	switch name {
	case "pdfminer", "":
		return nil, nil // nil selects driver's defaultParseFunc
	default:
		return nil, fmt.Errorf("nabu: unknown parser %q", name)
	}
}

// openLog mirrors original_source/build.py's logging.basicConfig(filename=...)
// call: one file per run under logdir, named with the run's start time.
func openLog(logdir string, debug bool) (*log.Logger, func(), error) {
	if err := os.MkdirAll(logdir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("nabu: creating log directory: %w", err)
	}
	name := fmt.Sprintf("nabu-%s.log", time.Now().Format(time.RFC3339))
	f, err := os.Create(filepath.Join(logdir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("nabu: creating log file: %w", err)
	}
	prefix := ""
	if debug {
		prefix = "DEBUG "
	}
	logger := log.New(f, prefix, log.LstdFlags)
	return logger, func() { f.Close() }, nil
}
