// Package pipeline provides the core check pipeline for followdiff.
//
// This package implements the complete load → diff → report pipeline used by
// every command. By centralizing this logic, all entry points behave the
// same way and the stage ordering is spelled out in one place.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse both export documents into canonical identifier sets
//  2. Diff: Compute following − followers, sorted ascending
//  3. Render: Produce the requested artifacts (txt, csv, json)
//
// The run is a single linear pass: both inputs are loaded sequentially,
// there are no retries, no branching states, and no concurrency. Inputs are
// small local files, so a full run completes in well under a second even
// for tens of thousands of identifiers.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    FollowingPath: "following.json",
//	    FollowersPath: "followers.json",
//	    Formats:       []string{"txt"},
//	})
//	if err != nil {
//	    return err
//	}
//	artifact := res.Artifacts["txt"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/followdiff/followdiff/pkg/errors"
	"github.com/followdiff/followdiff/pkg/export"
	"github.com/followdiff/followdiff/pkg/report"
)

// Default input filenames, matching the conventional export layout.
const (
	DefaultFollowingFile = "following.json"
	DefaultFollowersFile = "followers.json"
)

// DefaultFormats is the artifact set produced when none is requested.
var DefaultFormats = []string{report.FormatText}

// Options contains all configuration for the check pipeline.
type Options struct {
	// FollowingPath is the export of accounts the user follows.
	FollowingPath string `json:"following_path,omitempty"`

	// FollowersPath is the export of accounts following the user.
	FollowersPath string `json:"followers_path,omitempty"`

	// OutputDir receives the artifacts; empty means the working directory.
	OutputDir string `json:"output_dir,omitempty"`

	// Formats are the artifact formats to render.
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.FollowingPath == "" {
		o.FollowingPath = DefaultFollowingFile
	}
	if o.FollowersPath == "" {
		o.FollowersPath = DefaultFollowersFile
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}

	if err := errs.ValidateExportPath(o.FollowingPath); err != nil {
		return err
	}
	if err := errs.ValidateExportPath(o.FollowersPath); err != nil {
		return err
	}
	if err := errs.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	if err := report.ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Following is the canonical identifier set of the following export.
	Following export.Set

	// Followers is the canonical identifier set of the followers export.
	Followers export.Set

	// NotFollowingBack is the ordered non-follower sequence.
	NotFollowingBack []string

	// Summary holds the counts for reporting.
	Summary report.Summary

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and tolerance information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LoadTime   time.Duration
	DiffTime   time.Duration
	RenderTime time.Duration

	// SkippedEntries counts export entries that contributed no identifier
	// across both documents. Skips are diagnostics, never errors.
	SkippedEntries int
}
