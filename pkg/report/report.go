// Package report renders the non-follower result for the console and as
// flat output artifacts.
//
// Three formats are supported:
//
//   - txt: one canonical identifier per line, newline-joined, no header and
//     no trailing summary text. This is the primary contract.
//   - csv: a single "username" column with a header row, matching the layout
//     the upstream exporter tooling produced.
//   - json: counts plus run metadata, for collecting results across runs.
//
// Artifacts share the fixed base name "not_following_back" and are
// overwritten on each run.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/followdiff/followdiff/pkg/errors"
)

// Format constants for output formats.
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatCSV:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: txt, csv, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Summary holds the counts reported after a run.
type Summary struct {
	Following        int `json:"following"`
	Followers        int `json:"followers"`
	NotFollowingBack int `json:"not_following_back"`
}

// Render produces the artifact bytes for one format.
// ids must already be in final (ascending) order; Render preserves it.
func Render(format string, ids []string, sum Summary) ([]byte, error) {
	switch format {
	case FormatText:
		return renderText(ids), nil
	case FormatCSV:
		return renderCSV(ids)
	case FormatJSON:
		return renderJSON(ids, sum)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// RenderAll produces artifacts for every requested format, keyed by format.
func RenderAll(formats []string, ids []string, sum Summary) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := Render(format, ids, sum)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderText(ids []string) []byte {
	return []byte(strings.Join(ids, "\n"))
}

func renderCSV(ids []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"username"}); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode csv header")
	}
	for _, id := range ids {
		if err := w.Write([]string{id}); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "flush csv")
	}
	return buf.Bytes(), nil
}

// jsonReport is the schema of the json artifact. The run id makes artifacts
// distinguishable when several runs are collected in one place.
type jsonReport struct {
	RunID            string    `json:"run_id"`
	GeneratedAt      time.Time `json:"generated_at"`
	Summary          Summary   `json:"summary"`
	NotFollowingBack []string  `json:"not_following_back"`
}

func renderJSON(ids []string, sum Summary) ([]byte, error) {
	rep := jsonReport{
		RunID:            uuid.NewString(),
		GeneratedAt:      time.Now().UTC(),
		Summary:          sum,
		NotFollowingBack: ids,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode json report")
	}
	return buf.Bytes(), nil
}
