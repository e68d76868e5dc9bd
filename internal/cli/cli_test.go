package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/revu/internal/output"
)

// resetState restores flag variables and the exit code between tests.
func resetState() {
	flagDiff = ""
	flagOut = output.DefaultPath
	flagAgentsPath = ""
	flagNoRedact = false
	exitCode = ExitSuccess
}

func setTestEnv(t *testing.T, apiURL string) {
	t.Helper()
	t.Setenv("LLM_API_URL", apiURL)
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_MODEL_NAME", "test-model")
	t.Setenv("LLM_MAX_ATTEMPTS", "1")
	t.Setenv("REVU_LOG_LEVEL", "error")
}

func writeDiffFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "changes.patch")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDiff_File(t *testing.T) {
	path := writeDiffFile(t, "@@ -1 +1 @@\n-a\n+b\n")
	got, err := readDiff(path)
	if err != nil {
		t.Fatalf("readDiff error: %v", err)
	}
	if got != "@@ -1 +1 @@\n-a\n+b\n" {
		t.Errorf("readDiff = %q", got)
	}
}

func TestReadDiff_Missing(t *testing.T) {
	if _, err := readDiff(filepath.Join(t.TempDir(), "nope.patch")); err == nil {
		t.Error("expected error for missing diff file")
	}
}

func TestReview_MissingConfig(t *testing.T) {
	resetState()
	t.Chdir(t.TempDir())
	t.Setenv("LLM_API_URL", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_MODEL_NAME", "")

	flagDiff = "whatever.patch"
	if err := reviewCmd.RunE(reviewCmd, nil); err != nil {
		t.Fatalf("RunE returned error: %v", err)
	}
	if exitCode != ExitConfigError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitConfigError)
	}
	if _, err := os.Stat(output.DefaultPath); !os.IsNotExist(err) {
		t.Error("no output file should be written on configuration failure")
	}
}

func TestReview_UnreadableDiff(t *testing.T) {
	resetState()
	t.Chdir(t.TempDir())
	setTestEnv(t, "https://llm.example.com")

	flagDiff = "does-not-exist.patch"
	if err := reviewCmd.RunE(reviewCmd, nil); err != nil {
		t.Fatalf("RunE returned error: %v", err)
	}
	if exitCode != ExitInputError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitInputError)
	}
	if _, err := os.Stat(output.DefaultPath); !os.IsNotExist(err) {
		t.Error("no output file should be written on input failure")
	}
}

func TestReview_EmptyDiff(t *testing.T) {
	resetState()
	t.Chdir(t.TempDir())
	setTestEnv(t, "https://llm.example.com")

	flagDiff = writeDiffFile(t, "   \n\t\n")
	if err := reviewCmd.RunE(reviewCmd, nil); err != nil {
		t.Fatalf("RunE returned error: %v", err)
	}
	if exitCode != ExitInputError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitInputError)
	}
}

func TestReview_PipelineFailure(t *testing.T) {
	resetState()
	t.Chdir(t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"error":"nope"}`))
	}))
	defer server.Close()
	setTestEnv(t, server.URL)

	flagDiff = writeDiffFile(t, "@@ -1 +1 @@\n-a\n+b\n")
	if err := reviewCmd.RunE(reviewCmd, nil); err != nil {
		t.Fatalf("RunE returned error: %v", err)
	}
	if exitCode != ExitPipelineError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitPipelineError)
	}
	if _, err := os.Stat(output.DefaultPath); !os.IsNotExist(err) {
		t.Error("no output file should be written on pipeline failure")
	}
}

func TestReview_EndToEnd(t *testing.T) {
	resetState()
	t.Chdir(t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"The change renames a function."}}]}`))
	}))
	defer server.Close()
	setTestEnv(t, server.URL)

	flagDiff = writeDiffFile(t, "@@ -1 +1 @@\n-func old()\n+func renamed()\n")
	flagOut = "review.md"
	if err := reviewCmd.RunE(reviewCmd, nil); err != nil {
		t.Fatalf("RunE returned error: %v", err)
	}
	if exitCode != ExitSuccess {
		t.Fatalf("exitCode = %d, want %d", exitCode, ExitSuccess)
	}

	data, err := os.ReadFile("review.md")
	if err != nil {
		t.Fatalf("reading review document: %v", err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "# AI PR Review\n\n") {
		t.Errorf("document should start with the fixed heading, got %q", got)
	}
	if !strings.Contains(got, "The change renames a function.") {
		t.Errorf("document should contain the review body, got %q", got)
	}
}
