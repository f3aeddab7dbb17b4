package batch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// ResultLog appends search outcomes to a shared, line-oriented log file.
// Each append runs under an advisory file lock, so several processes may
// share one log and still interleave whole lines only.
type ResultLog struct {
	path string
	lock *flock.Flock
}

// NewResultLog returns a log writing to path; the lock file lives next to
// it as path+".lock". The log file itself is created on first append.
func NewResultLog(path string) *ResultLog {
	return &ResultLog{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path reports the log file location.
func (l *ResultLog) Path() string { return l.path }

// Append writes one outcome line tagged with runID, holding the file lock
// for the duration of the write.
func (l *ResultLog) Append(runID string, out Outcome) error {
	if err := l.lock.Lock(); err != nil {
		return fmt.Errorf("batch: lock result log: %w", err)
	}
	defer l.lock.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("batch: open result log: %w", err)
	}
	defer f.Close()

	if _, err = f.WriteString(formatLine(runID, time.Now().UTC(), out)); err != nil {
		return fmt.Errorf("batch: append result log: %w", err)
	}

	return nil
}

// formatLine renders one outcome as a single log line:
//
//	<ts> <runID> <start> <target> found depth=<d> path=<a->b->c>
//	<ts> <runID> <start> <target> not-found
//	<ts> <runID> <start> <target> error <message>
func formatLine(runID string, ts time.Time, out Outcome) string {
	prefix := fmt.Sprintf("%s %s %s %s",
		ts.Format(time.RFC3339), runID, out.Start, out.Target)

	switch {
	case out.Err != nil:
		return fmt.Sprintf("%s error %v\n", prefix, out.Err)
	case !out.Found:
		return prefix + " not-found\n"
	default:
		return fmt.Sprintf("%s found depth=%d path=%s\n",
			prefix, out.Depth, strings.Join(out.Path, "->"))
	}
}
