package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/followdiff/followdiff/pkg/diff"
	"github.com/followdiff/followdiff/pkg/export"
	"github.com/followdiff/followdiff/pkg/report"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options, although a single run is strictly sequential.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → diff → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: load both exports. Sequential on purpose - the inputs are two
	// small local files and the output must not depend on load order.
	loadStart := time.Now()
	following, err := r.loadExport(ctx, "following", opts.FollowingPath)
	if err != nil {
		return nil, err
	}
	followers, err := r.loadExport(ctx, "followers", opts.FollowersPath)
	if err != nil {
		return nil, err
	}
	result.Following = following.IDs
	result.Followers = followers.IDs
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SkippedEntries = following.Skipped + followers.Skipped

	r.Logger.Info("loaded exports",
		"following", following.IDs.Len(),
		"followers", followers.IDs.Len(),
		"duration", result.Stats.LoadTime)

	// Stage 2: diff
	diffStart := time.Now()
	result.NotFollowingBack = diff.NotFollowingBack(following.IDs, followers.IDs)
	result.Stats.DiffTime = time.Since(diffStart)
	result.Summary = report.Summary{
		Following:        following.IDs.Len(),
		Followers:        followers.IDs.Len(),
		NotFollowingBack: len(result.NotFollowingBack),
	}

	r.Logger.Info("computed difference",
		"not_following_back", len(result.NotFollowingBack),
		"duration", result.Stats.DiffTime)

	// Stage 3: render artifacts
	renderStart := time.Now()
	artifacts, err := report.RenderAll(opts.Formats, result.NotFollowingBack, result.Summary)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load parses a single export document, for inspection commands.
func (r *Runner) Load(ctx context.Context, path string) (*export.Document, error) {
	return r.loadExport(ctx, "export", path)
}

// loadExport loads one export document and logs its shape diagnostics.
func (r *Runner) loadExport(ctx context.Context, role, path string) (*export.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := export.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s export: %w", role, err)
	}

	r.Logger.Debug("loaded export",
		"role", role,
		"path", path,
		"shape", doc.Shape,
		"key", doc.Key,
		"entries", doc.Entries,
		"identifiers", doc.IDs.Len(),
		"skipped", doc.Skipped)

	return doc, nil
}
