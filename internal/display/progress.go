package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	statusComplete  = "Complete!"
	statusNoChanges = "No changes were made"
)

var statusColor = color.New(color.FgGreen, color.Bold)

// Progress renders one message per attempted rename. In redraw mode (a TTY)
// each message overwrites the previous one on a single line; otherwise every
// message gets its own line. The widest message seen is tracked so the final
// status can be right-aligned under it.
type Progress struct {
	w       io.Writer
	redraw  bool
	longest int
	last    int
	shown   int
}

// NewProgress creates a Progress writing to w.
func NewProgress(w io.Writer, redraw bool) *Progress {
	return &Progress{w: w, redraw: redraw}
}

// Report prints the message for one rename attempt.
func (p *Progress) Report(current, total int, from, to string) {
	msg := FormatRename(current, total, from, to)
	width := Width(msg)
	p.longest = max(p.longest, width)
	p.shown++

	if !p.redraw {
		fmt.Fprintln(p.w, msg)
		return
	}
	// Pad to the previous message so a shorter line leaves no remnants.
	fmt.Fprintf(p.w, "\r%s", PadRight(msg, p.last))
	p.last = width
}

// Finish prints the final status: "Complete!" right-aligned to the widest
// message when any file changed, otherwise "No changes were made".
func (p *Progress) Finish(changed bool) {
	if !changed {
		p.endLine()
		fmt.Fprintln(p.w, statusNoChanges)
		return
	}
	// Pad the plain text, then color it, so escape bytes don't count as width.
	indent := PadLeft("", p.longest-Width(statusComplete))
	if p.redraw && p.shown > 0 {
		// The status is at least as wide as the last message, so it
		// overwrites it completely.
		fmt.Fprint(p.w, "\r")
	}
	fmt.Fprintln(p.w, indent+statusColor.Sprint(statusComplete))
	p.shown = 0
}

// Abort terminates a pending redrawn progress line so that whatever is
// printed next starts on a fresh line.
func (p *Progress) Abort() {
	p.endLine()
}

func (p *Progress) endLine() {
	if p.redraw && p.shown > 0 {
		fmt.Fprintln(p.w)
	}
	p.shown = 0
}
