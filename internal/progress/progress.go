// Package progress prints a live elapsed-time indicator while a blocking call runs.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

const defaultInterval = 500 * time.Millisecond

// Reporter starts timers on a terminal-like writer. A nil writer disables output.
type Reporter struct {
	out      io.Writer
	interval time.Duration
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out, interval: defaultInterval}
}

// Timer is one running indicator. Stop must be called on every exit path; extra calls are no-ops.
type Timer struct {
	label   string
	out     io.Writer
	started time.Time
	spin    *spinner.Spinner
	once    sync.Once
	elapsed time.Duration
}

// Start animates "label: Ns" until Stop is called. The animation only runs
// when the writer is a terminal; the final line is always printed.
func (r *Reporter) Start(label string) *Timer {
	t := &Timer{label: label, started: time.Now()}
	if r == nil || r.out == nil {
		return t
	}

	t.out = r.out
	t.spin = spinner.New(spinner.CharSets[14], r.interval, writerOption(r.out), spinner.WithHiddenCursor(true))
	t.spin.Suffix = t.suffix(0)
	t.spin.PreUpdate = func(s *spinner.Spinner) {
		s.Suffix = t.suffix(time.Since(t.started))
	}
	t.spin.Start()
	return t
}

// Stop halts the indicator, prints the final elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	t.once.Do(func() {
		t.elapsed = time.Since(t.started)
		if t.spin == nil {
			return
		}
		t.spin.Stop()
		fmt.Fprintf(t.out, "⏱️  %s: %ds\n", t.label, int(t.elapsed.Seconds()))
	})
	return t.elapsed
}

func (t *Timer) suffix(d time.Duration) string {
	return fmt.Sprintf(" %s: %ds", t.label, int(d.Seconds()))
}

func writerOption(out io.Writer) spinner.Option {
	if f, ok := out.(*os.File); ok {
		return spinner.WithWriterFile(f)
	}
	return spinner.WithWriter(out)
}
