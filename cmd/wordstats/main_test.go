package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wordstats/internal/model"
)

func setupLists(t *testing.T) (cfgPath, outDir, dbFile string) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))

	base := filepath.Join(root, "lists")
	outDir = filepath.Join(root, "out")
	for _, dir := range []string{base, outDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(base, "animals.txt"), []byte("cat\ndog\nelephant\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "dups.txt"), []byte("ab\nab\nabc\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	dbFile = filepath.Join(root, "history.db")
	cfgPath = filepath.Join(root, "wordstats.toml")
	content := fmt.Sprintf("[analysis]\nbase-dir = %q\nout-dir = %q\nfiles = [\"animals.txt\", \"dups.txt\"]\n", base, outDir)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath, outDir, dbFile
}

func TestAnalyzeCommandWritesReport(t *testing.T) {
	cfgPath, outDir, dbFile := setupLists(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--record", "--db", dbFile})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var results []model.Result
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out.String())
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Stats.ListName != "animals.txt" || results[0].PlotFile != "histogram_word_lengths_animals.png" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].Stats.UniqueWordCount != 2 {
		t.Fatalf("expected 2 unique words, got %d", results[1].Stats.UniqueWordCount)
	}
	for _, r := range results {
		if _, err := os.Stat(filepath.Join(outDir, r.PlotFile)); err != nil {
			t.Fatalf("expected histogram %s: %v", r.PlotFile, err)
		}
	}

	history := newRootCmd()
	var histOut bytes.Buffer
	history.SetOut(&histOut)
	history.SetArgs([]string{"history", "--config", cfgPath, "--db", dbFile})
	if err := history.Execute(); err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(histOut.String(), "animals.txt") || !strings.Contains(histOut.String(), "dups.txt") {
		t.Fatalf("expected recorded lists in history:\n%s", histOut.String())
	}
}

func TestAnalyzeCommandMissingList(t *testing.T) {
	cfgPath, outDir, _ := setupLists(t)
	if err := os.Remove(filepath.Join(filepath.Dir(outDir), "lists", "dups.txt")); err != nil {
		t.Fatalf("remove list: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for missing list")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no report on failure, got %q", out.String())
	}
}
