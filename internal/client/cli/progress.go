package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	minBarWidth   = 10
)

// termWidth is a test seam for term.GetSize.
var termWidth = func(fd int) (int, bool) {
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	return w, err == nil && w > 0
}

// ProgressBar draws transfer progress on one terminal line. Update is safe
// for concurrent use; its signature matches services.ProgressFunc.
type ProgressBar struct {
	mu sync.Mutex
	w  io.Writer
	fd int
}

// NewProgressBar writes to w and sizes itself to the terminal behind fd.
func NewProgressBar(w io.Writer, fd int) *ProgressBar {
	return &ProgressBar{w: w, fd: fd}
}

// NewStdoutProgressBar is NewProgressBar on standard output.
func NewStdoutProgressBar() *ProgressBar {
	return NewProgressBar(os.Stdout, int(os.Stdout.Fd()))
}

func (p *ProgressBar) Update(percent int, correlationID, fileName string) {
	width, ok := termWidth(p.fd)
	if !ok {
		width = fallbackWidth
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "\r"+renderBar(width, percent, fileName))
	if percent >= 100 {
		fmt.Fprintln(p.w)
	}
}

// renderBar returns a line of exactly width runes when the label fits.
func renderBar(width, percent int, label string) string {
	percent = max(0, min(100, percent))
	suffix := fmt.Sprintf(" %3d%% %s", percent, label)

	bar := width - len([]rune(suffix)) - 2
	if bar < minBarWidth {
		bar = minBarWidth
	}
	filled := bar * percent / 100
	line := "[" + strings.Repeat("#", filled) + strings.Repeat(" ", bar-filled) + "]" + suffix

	if r := []rune(line); len(r) > width && width > minBarWidth+2 {
		return string(r[:width])
	}
	return line
}
