// Package pkg provides the core libraries for the followdiff reciprocity checker.
//
// # Overview
//
// Followdiff reads two locally exported social-graph membership lists — the
// accounts a user follows and the accounts following the user — and reports
// the followed accounts that do not follow back. Everything runs offline on
// the export files; there is no network access and no remote state.
//
// # Architecture
//
// The data flow is a single linear pipeline:
//
//	following.json / followers.json
//	         ↓
//	    [export] package (tolerant parsing → canonical identifier sets)
//	         ↓
//	    [diff] package (set difference, deterministic ordering)
//	         ↓
//	    [report] package (console summary + txt/csv/json artifacts)
//
// # Main Packages
//
// [export] - Loads one export document and produces a canonical identifier
// set. Export schemas drift between producer versions, so the loader detects
// the document shape (top-level list, known keyed list, first list-valued
// field) and resolves each entry through an ordered list of extractors.
//
// [diff] - Computes following − followers as a sorted sequence.
//
// [report] - Renders the result in one or more formats and writes the
// artifacts. The txt format is the flat one-identifier-per-line contract;
// csv matches the upstream exporter's header layout; json adds run metadata.
//
// [pipeline] - Orchestration (load → diff → render) shared by all commands.
//
// [errors] - Structured error codes distinguishing input-read failures from
// output-write failures.
//
// [buildinfo] - ldflags-injected version information.
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/followdiff/followdiff/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    FollowingPath: "following.json",
//	    FollowersPath: "followers.json",
//	})
//	if err != nil {
//	    return err
//	}
//	for _, id := range res.NotFollowingBack {
//	    fmt.Println(id)
//	}
//
// [export]: https://pkg.go.dev/github.com/followdiff/followdiff/pkg/export
// [diff]: https://pkg.go.dev/github.com/followdiff/followdiff/pkg/diff
// [report]: https://pkg.go.dev/github.com/followdiff/followdiff/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/followdiff/followdiff/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/followdiff/followdiff/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/followdiff/followdiff/pkg/buildinfo
package pkg
