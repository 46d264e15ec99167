package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starshelf/internal/testsupport"
)

func TestFindDuplicatesWritesReports(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := catalogDir(t, env.cfg, "Messier")
	testsupport.WriteFile(t, filepath.Join(dir, "M42_a.jpg"), "same bytes")
	testsupport.WriteFile(t, filepath.Join(dir, "M42_b.jpg"), "same bytes")

	output := filepath.Join(t.TempDir(), "duplicates.txt")
	out, _, err := runCLI(t, []string{"find-duplicates", "--output", output}, env.configPath)
	if err != nil {
		t.Fatalf("find-duplicates: %v", err)
	}
	requireContains(t, out, "Duplicate groups: 1")
	requireContains(t, out, "Report written to")

	report, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("text report missing: %v", err)
	}
	requireContains(t, string(report), "Common IDs: M42")

	jsonPath := strings.TrimSuffix(output, ".txt") + ".json"
	if _, err := os.Stat(jsonPath); err != nil {
		t.Fatalf("json report missing: %v", err)
	}
}

func TestFindDuplicatesRequiresOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"find-duplicates"}, env.configPath); err == nil {
		t.Fatal("find-duplicates without --output should fail")
	}
}

func TestFindDuplicatesRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := catalogDir(t, env.cfg, "NGC")
	testsupport.WriteFile(t, filepath.Join(dir, "NGC891_a.jpg"), "same bytes")
	testsupport.WriteFile(t, filepath.Join(dir, "NGC891_b.jpg"), "same bytes")

	output := filepath.Join(t.TempDir(), "duplicates.txt")
	if _, _, err := runCLI(t, []string{"find-duplicates", "--output", output}, env.configPath); err != nil {
		t.Fatalf("find-duplicates: %v", err)
	}

	out, _, err := runCLI(t, []string{"history", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "duplicate-scan")
}
