package review

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveInstructions_Fallback(t *testing.T) {
	t.Chdir(t.TempDir())
	got := ResolveInstructions("")
	if got != fallbackInstructions {
		t.Errorf("ResolveInstructions = %q, want built-in fallback", got)
	}
}

func TestResolveInstructions_ConventionalPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "AGENTS.md", "root instructions")
	if got := ResolveInstructions(""); got != "root instructions" {
		t.Errorf("ResolveInstructions = %q, want AGENTS.md content", got)
	}

	// .github/AGENTS.md takes precedence over the repo root file.
	writeFile(t, filepath.Join(".github", "AGENTS.md"), "github instructions")
	if got := ResolveInstructions(""); got != "github instructions" {
		t.Errorf("ResolveInstructions = %q, want .github/AGENTS.md content", got)
	}
}

func TestResolveInstructions_ExplicitPathWins(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "AGENTS.md", "conventional")
	writeFile(t, "custom.md", "explicit")
	if got := ResolveInstructions("custom.md"); got != "explicit" {
		t.Errorf("ResolveInstructions = %q, want explicit file content", got)
	}
}

func TestResolveInstructions_MissingExplicitFallsThrough(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "AGENTS.md", "conventional")
	if got := ResolveInstructions("does-not-exist.md"); got != "conventional" {
		t.Errorf("ResolveInstructions = %q, want conventional path content", got)
	}
}
