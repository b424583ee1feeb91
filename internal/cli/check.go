package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/followdiff/followdiff/pkg/pipeline"
	"github.com/followdiff/followdiff/pkg/report"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	following string // following export path (overrides config)
	followers string // followers export path (overrides config)
	output    string // artifact directory (overrides config)
	formats   string // comma-separated artifact formats
	quiet     bool   // suppress the identifier listing on the console
}

// checkCommand creates the check command, the tool's main operation.
// It is also what a bare `followdiff` invocation runs.
func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOpts{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find followed accounts that don't follow back",
		Long: `Find the accounts you follow who don't follow you back.

Reads following.json and followers.json from the working directory (or the
paths given by flags or followdiff.toml), prints a summary with one account
per line, and writes the listing to not_following_back.txt.

Examples:
  followdiff check
  followdiff check --following exports/following.json --followers exports/followers.json
  followdiff check --format txt,csv,json --output reports/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.following, "following", "", "following export file (default following.json)")
	cmd.Flags().StringVar(&opts.followers, "followers", "", "followers export file (default followers.json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "artifact directory (default working directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "comma-separated artifact formats: txt,csv,json (default txt)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the account listing on the console")

	return cmd
}

// runCheck executes the full load → diff → report pipeline and presents the
// result. Config file values fill in anything flags left unset.
func (c *CLI) runCheck(ctx context.Context, opts checkOpts) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.Options{
		FollowingPath: firstNonEmpty(opts.following, cfg.Following),
		FollowersPath: firstNonEmpty(opts.followers, cfg.Followers),
		OutputDir:     firstNonEmpty(opts.output, cfg.Output),
		Logger:        c.Logger,
	}
	switch {
	case opts.formats != "":
		pipeOpts.Formats = parseFormats(opts.formats)
	case len(cfg.Formats) > 0:
		pipeOpts.Formats = cfg.Formats
	}

	// Resolve defaults here as well: Execute receives a copy, and the
	// artifact write below needs the effective formats.
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	p := newProgress(c.Logger)
	runner := pipeline.NewRunner(c.Logger)
	res, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Checked %d followed accounts", res.Summary.Following))
	if res.Stats.SkippedEntries > 0 {
		c.Logger.Debug("skipped entries without identifiers", "count", res.Stats.SkippedEntries)
	}

	printSummary(res.Summary)
	if !opts.quiet {
		for _, id := range res.NotFollowingBack {
			fmt.Println(id)
		}
		if len(res.NotFollowingBack) > 0 {
			fmt.Println()
		}
	}

	paths, err := report.WriteFiles(pipeOpts.OutputDir, pipeOpts.Formats, res.Artifacts)
	if err != nil {
		printError("could not write artifacts")
		return err
	}

	printSuccess("Saved %d artifact(s)", len(paths))
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
