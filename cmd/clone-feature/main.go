// Command clone-feature copies a Jira Feature and all of its child Epics.
//
// The new Feature gets the summary given with --summary; every Epic clone is
// parented to it through the "Parent Link" field. Use --dry-run to print the
// creation payloads without touching Jira.
//
// JIRA_TOKEN must hold a personal access token; JIRA_URL selects the instance.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/opensdd/feature-clone/core/browser"
	"github.com/opensdd/feature-clone/core/clone"
	"github.com/opensdd/feature-clone/core/config"
	"github.com/opensdd/feature-clone/core/jira"
	"github.com/spf13/cobra"
)

const (
	flagFeature = "feature"
	flagSummary = "summary"
	flagDryRun  = "dry-run"
	flagOpen    = "open"
	flagVerbose = "verbose"
)

type options struct {
	feature string
	summary string
	dryRun  bool
	open    bool
	verbose bool
}

// openURL is swapped in tests.
var openURL = browser.Open

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "clone-feature --feature KEY --summary TEXT [--dry-run]",
		Short:         "Clone a feature and its child epics.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.feature, flagFeature, "", "Key of the feature to clone together with its child epics")
	flags.StringVar(&opts.summary, flagSummary, "", "Summary of the new feature")
	flags.BoolVar(&opts.dryRun, flagDryRun, false, "Print what would be created without taking action on JIRA")
	flags.BoolVar(&opts.open, flagOpen, false, "Open the new feature in a web browser")
	flags.BoolVarP(&opts.verbose, flagVerbose, "v", false, "Log debug details to stderr")
	_ = cmd.MarkFlagRequired(flagFeature)
	_ = cmd.MarkFlagRequired(flagSummary)
	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	setupLogging(stderr, opts.verbose)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	slog.Debug("Using JIRA instance", "url", cfg.URL)

	client, err := jira.NewClient(ctx, cfg.URL, cfg.Token)
	if err != nil {
		return err
	}

	c := &clone.Cloner{
		Tracker:   client,
		Out:       stdout,
		BrowseURL: client.BrowseURL,
	}
	res, err := c.Run(ctx, clone.Options{
		FeatureKey: opts.feature,
		Summary:    opts.summary,
		DryRun:     opts.dryRun,
	})
	if err != nil {
		return err
	}

	if opts.open && res.Feature.Created {
		if err := openURL(client.BrowseURL(res.Feature.Key)); err != nil {
			slog.Warn("Could not open the new feature in a browser", "err", err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
