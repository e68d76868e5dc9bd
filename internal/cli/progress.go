package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// startProgress shows a spinner on stderr while the pipeline runs.
// Returns nil when stderr is not a terminal (CI logs stay clean).
func startProgress(model string) *spinner.Spinner {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" reviewing with %s", model)
	s.Start()
	return s
}

func stopProgress(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
