package main

import (
	"strings"
	"testing"

	"starshelf/internal/testsupport"
)

func TestBestMonthsCircumpolar(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithObserver(45, 0))

	out, _, err := runCLI(t, []string{"best-months", "0", "89"}, env.configPath)
	if err != nil {
		t.Fatalf("best-months: %v", err)
	}
	requireContains(t, out, "JanFebMarAprMayJunJulAugSepOctNovDec")
}

func TestBestMonthsNeverVisible(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithObserver(45, 0))

	out, _, err := runCLI(t, []string{"best-months", "0", "-89"}, env.configPath)
	if err != nil {
		t.Fatalf("best-months: %v", err)
	}
	requireContains(t, out, "Never clears the imaging altitude")
}

func TestBestMonthsObserverOverride(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithObserver(45, 0))

	out, _, err := runCLI(t, []string{"best-months", "0", "-89", "--latitude", "-45"}, env.configPath)
	if err != nil {
		t.Fatalf("best-months: %v", err)
	}
	if !strings.Contains(out, "Jan") {
		t.Fatalf("southern observer should see a far-southern object, got:\n%s", out)
	}
}

func TestBestMonthsSexagesimalInput(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithObserver(45, 0))

	plain, _, err := runCLI(t, []string{"best-months", "5.5", "0"}, env.configPath)
	if err != nil {
		t.Fatalf("best-months decimal: %v", err)
	}
	sexagesimal, _, err := runCLI(t, []string{"best-months", "5:30:00", "0"}, env.configPath)
	if err != nil {
		t.Fatalf("best-months sexagesimal: %v", err)
	}
	if plain != sexagesimal {
		t.Fatalf("5.5h and 5:30:00 should agree: %q vs %q", plain, sexagesimal)
	}
}

func TestBestMonthsRejectsGarbage(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"best-months", "noon", "up"}, env.configPath); err == nil {
		t.Fatal("unparsable coordinates should fail")
	}
}
