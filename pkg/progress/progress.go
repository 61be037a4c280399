package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const barWidth = 40

// Progress renders a single-line step counter such as
// "[====      ] 50.0% installing helm (2s elapsed)".
type Progress struct {
	TotalSteps  int
	CurrentStep int
	Message     string
	StartTime   time.Time

	out io.Writer
	now func() time.Time
}

// New creates a progress bar for totalSteps steps writing to out.
func New(out io.Writer, totalSteps int) *Progress {
	return &Progress{
		TotalSteps: totalSteps,
		StartTime:  time.Now(),
		out:        out,
		now:        time.Now,
	}
}

// ForTerminal returns a progress bar on f when f is a terminal, or nil otherwise.
// All methods are no-ops on a nil *Progress.
func ForTerminal(f *os.File, totalSteps int) *Progress {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return nil
	}

	return New(f, totalSteps)
}

// Update advances one step and redraws the line.
func (p *Progress) Update(message string) {
	if p == nil {
		return
	}

	p.CurrentStep++
	p.Message = message
	p.print()
}

// Done finishes the line if the last step has not already done so.
func (p *Progress) Done() {
	if p == nil || p.CurrentStep >= p.TotalSteps {
		return
	}

	_, _ = fmt.Fprintln(p.out)
}

// Line returns the current progress line without terminal control codes.
func (p *Progress) Line() string {
	percentage := 100.0
	if p.TotalSteps > 0 {
		percentage = float64(p.CurrentStep) / float64(p.TotalSteps) * 100
	}

	completed := min(max(int(float64(barWidth)*percentage/100), 0), barWidth)
	bar := strings.Repeat("=", completed) + strings.Repeat(" ", barWidth-completed)
	elapsed := p.now().Sub(p.StartTime).Round(time.Second)

	return fmt.Sprintf("[%s] %.1f%% %s (%s elapsed)", bar, percentage, p.Message, elapsed)
}

func (p *Progress) print() {
	// Clear the current line
	_, _ = fmt.Fprint(p.out, "\r\033[K", p.Line())

	if p.CurrentStep == p.TotalSteps {
		_, _ = fmt.Fprintln(p.out)
	}
}
