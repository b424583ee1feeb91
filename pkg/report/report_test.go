package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	errs "github.com/followdiff/followdiff/pkg/errors"
)

func TestRenderText(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"multiple identifiers", []string{"alice", "bob"}, "alice\nbob"},
		{"single identifier", []string{"alice"}, "alice"},
		{"empty result is an empty artifact", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Render(FormatText, tt.ids, Summary{})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Render() = %q, want %q", string(data), tt.want)
			}
		})
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := Render(FormatCSV, []string{"alice", "bob"}, Summary{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "username\nalice\nbob\n"
	if string(data) != want {
		t.Errorf("Render() = %q, want %q", string(data), want)
	}
}

func TestRenderCSVEmpty(t *testing.T) {
	data, err := Render(FormatCSV, nil, Summary{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Header only, no rows
	if string(data) != "username\n" {
		t.Errorf("Render() = %q, want header only", string(data))
	}
}

func TestRenderJSON(t *testing.T) {
	sum := Summary{Following: 3, Followers: 2, NotFollowingBack: 1}
	data, err := Render(FormatJSON, []string{"alice"}, sum)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var rep struct {
		RunID            string   `json:"run_id"`
		Summary          Summary  `json:"summary"`
		NotFollowingBack []string `json:"not_following_back"`
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("json artifact does not decode: %v", err)
	}

	if rep.RunID == "" {
		t.Error("run_id should not be empty")
	}
	if rep.Summary != sum {
		t.Errorf("summary = %+v, want %+v", rep.Summary, sum)
	}
	if !slices.Equal(rep.NotFollowingBack, []string{"alice"}) {
		t.Errorf("not_following_back = %v, want [alice]", rep.NotFollowingBack)
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	_, err := Render("svg", []string{"alice"}, Summary{})
	if err == nil {
		t.Fatal("Render() should reject unknown formats")
	}
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidFormat)
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{FormatText, FormatCSV, FormatJSON}); err != nil {
		t.Errorf("ValidateFormats() error = %v", err)
	}
	if err := ValidateFormats([]string{FormatText, "pdf"}); err == nil {
		t.Error("ValidateFormats() should reject unknown formats")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	artifacts := map[string][]byte{
		FormatText: []byte("alice"),
		FormatCSV:  []byte("username\nalice\n"),
	}
	paths, err := WriteFiles(dir, []string{FormatText, FormatCSV}, artifacts)
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}

	data, err := os.ReadFile(filepath.Join(dir, "not_following_back.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alice" {
		t.Errorf("txt artifact = %q, want %q", string(data), "alice")
	}
}

// Artifacts are overwritten on each run, not appended.
func TestWriteFilesOverwrites(t *testing.T) {
	dir := t.TempDir()

	first := map[string][]byte{FormatText: []byte("alice\nbob\ncarol")}
	if _, err := WriteFiles(dir, []string{FormatText}, first); err != nil {
		t.Fatal(err)
	}

	second := map[string][]byte{FormatText: []byte("")}
	if _, err := WriteFiles(dir, []string{FormatText}, second); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "not_following_back.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("artifact = %q, want empty", string(data))
	}
}

func TestWriteFilesError(t *testing.T) {
	_, err := WriteFiles(filepath.Join(t.TempDir(), "missing-dir"), []string{FormatText}, map[string][]byte{
		FormatText: []byte("alice"),
	})
	if err == nil {
		t.Fatal("WriteFiles() should fail on a missing directory")
	}
	if !errs.Is(err, errs.ErrCodeOutputWrite) {
		t.Errorf("error code = %v, want %v", errs.GetCode(err), errs.ErrCodeOutputWrite)
	}
}
