package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/tanq16/getr/internal/utils"
)

// Progress is a byte progress bar, or a spinner when the total is unknown.
// It keeps its own counters so callers can check what was reported.
type Progress struct {
	bar      *progressbar.ProgressBar
	current  int64
	total    int64
	finished bool
	stopped  bool
}

// NewProgress renders to w, or nowhere in quiet mode. A negative total
// selects the spinner; an empty body gets a one-unit bar that Finish fills.
func NewProgress(w io.Writer, verbosity utils.Verbosity, description string, total int64) *Progress {
	if w == nil {
		w = os.Stderr
	}
	if verbosity == utils.Quiet {
		w = io.Discard
	}
	barMax := total
	switch {
	case total < 0:
		barMax = -1
	case total == 0:
		barMax = 1
	}
	bar := progressbar.NewOptions64(barMax,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(progressWidth(w)),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeUnicode),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)
	return &Progress{bar: bar, total: total}
}

// Update moves the indicator to downloaded bytes. Its signature matches the
// job progress callback.
func (p *Progress) Update(downloaded, total int64) {
	if downloaded <= p.current {
		return
	}
	p.current = downloaded
	_ = p.bar.Set64(downloaded)
}

// Finish marks the indicator complete whatever the final count is.
func (p *Progress) Finish() {
	if p.stopped {
		return
	}
	p.stopped = true
	p.finished = true
	_ = p.bar.Finish()
}

// Abandon stops the indicator without marking it complete.
func (p *Progress) Abandon() {
	if p.stopped {
		return
	}
	p.stopped = true
	_ = p.bar.Clear()
}

func (p *Progress) Current() int64 { return p.current }
func (p *Progress) Total() int64 { return p.total }
func (p *Progress) Finished() bool { return p.finished }
