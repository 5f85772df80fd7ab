package summary

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/tidwall/pretty"

	"github.com/sportdeets/load-tests/internal/environment"
	"github.com/sportdeets/load-tests/internal/scenario"
)

// StdoutKey names the output that goes to standard output.
const StdoutKey = "stdout"

// Writer prints summaries and stores the result files scenarios ask for.
type Writer struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir, now: time.Now}
}

// WithClock overrides the time used to name result files.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// ResultPath is where sc's summary would be stored at t.
func (w *Writer) ResultPath(sc scenario.Scenario, t time.Time) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s-test-%s.json", sc.Name, t.UTC().Format("2006-01-02T15-04-05")))
}

// Outputs maps each destination to its content: StdoutKey always, plus a
// result file when the scenario saves results.
func (w *Writer) Outputs(sc scenario.Scenario, data []byte) map[string][]byte {
	blob := pretty.Pretty(data)
	outputs := map[string][]byte{StdoutKey: blob}

	if sc.Report.SaveResults {
		outputs[w.ResultPath(sc, w.now())] = blob
	}

	return outputs
}

// Write prints the report lines and the JSON blob to out and stores any
// result file. It returns the parsed summary.
func (w *Writer) Write(out io.Writer, sc scenario.Scenario, env environment.Config, data []byte) (Summary, error) {
	s, err := Parse(data)
	if err != nil {
		return Summary{}, err
	}

	if err := Print(out, sc, env, s); err != nil {
		return Summary{}, fmt.Errorf("printing summary: %w", err)
	}

	outputs := w.Outputs(sc, data)
	for dest, content := range outputs {
		if dest == StdoutKey {
			continue
		}

		if err := w.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return Summary{}, fmt.Errorf("creating results directory: %w", err)
		}
		if err := afero.WriteFile(w.fs, dest, content, 0644); err != nil {
			return Summary{}, fmt.Errorf("writing results to %s: %w", dest, err)
		}
		if _, err := fmt.Fprintf(out, "\n   Results saved to: %s\n", dest); err != nil {
			return Summary{}, err
		}
	}

	if _, err := out.Write(outputs[StdoutKey]); err != nil {
		return Summary{}, fmt.Errorf("writing summary JSON: %w", err)
	}

	return s, nil
}
