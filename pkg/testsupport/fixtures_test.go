package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFixtureJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choices.json")
	if err := os.WriteFile(path, []byte(`{"r":"Red","g":"Green"}`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var choices map[string]string
	LoadFixtureJSON(t, path, &choices)

	if choices["r"] != "Red" || choices["g"] != "Green" {
		t.Errorf("unexpected fixture content: %v", choices)
	}
}

func TestCompareWithGolden_CreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "golden", "query.sql")

	CompareWithGolden(t, path, []byte("SELECT 1"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected golden file to be created: %v", err)
	}
	if string(data) != "SELECT 1" {
		t.Errorf("unexpected golden content: %q", data)
	}

	// Second comparison against the created file must pass silently.
	CompareWithGolden(t, path, []byte("SELECT 1"))
}

func TestPaths(t *testing.T) {
	if got := FixturePath("choices.json"); got != filepath.Join("testdata", "choices.json") {
		t.Errorf("FixturePath() = %q", got)
	}
	if got := GoldenPath("query.sql"); got != filepath.Join("testdata", "golden", "query.sql") {
		t.Errorf("GoldenPath() = %q", got)
	}
}
