// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/stats"
)

// defaultDataPath matches the server's DATASET_PATH default.
const defaultDataPath = "f1_data.csv"

// options are the persistent flags shared by every subcommand.
type options struct {
	dataPath string
	timeout  time.Duration
	pretty   bool
	logLevel string
}

// app holds what subcommands need at run time.
type app struct {
	opts   options
	loader dataset.Loader
}

// NewRootCommand builds the podium command tree. A nil loader reads the
// CSV through DuckDB.
func NewRootCommand(version string, loader dataset.Loader) *cobra.Command {
	a := &app{loader: loader}

	root := &cobra.Command{
		Use:   "podium",
		Short: "Query race-results statistics from the command line",
		Long: `podium computes the same driver and season statistics as the HTTP
server, straight from the results CSV, and prints them as JSON.

The data file defaults to $DATASET_PATH, then ./f1_data.csv.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(logging.Config{
				Level:  a.opts.logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	dataDefault := defaultDataPath
	if env := os.Getenv("DATASET_PATH"); env != "" {
		dataDefault = env
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.dataPath, "data", dataDefault, "results CSV file")
	flags.DurationVar(&a.opts.timeout, "timeout", time.Minute, "maximum time to load the CSV")
	flags.BoolVar(&a.opts.pretty, "pretty", false, "indent JSON output")
	flags.StringVar(&a.opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	root.AddCommand(a.queryCommands()...)
	return root
}

// Execute runs the command tree against os.Args.
func Execute(version string) error {
	return NewRootCommand(version, nil).Execute()
}

// engine loads the dataset once and returns an engine over it.
func (a *app) engine(ctx context.Context) (*stats.Engine, error) {
	loader := a.loader
	if loader == nil {
		loader = dataset.NewCSVReader(a.opts.timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, a.opts.timeout)
	defer cancel()

	store := dataset.NewStore(loader, a.opts.dataPath)
	snap, err := store.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.opts.dataPath, err)
	}
	logging.Debug().Int("rows", snap.Len()).Str("path", a.opts.dataPath).Msg("Dataset loaded")

	return stats.NewEngine(store), nil
}

// print writes v as JSON followed by a newline.
func (a *app) print(w io.Writer, v interface{}) error {
	var (
		data []byte
		err  error
	)
	if a.opts.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
