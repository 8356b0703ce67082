package exporter

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

// exportProgressBar renders a single-line progress bar on stderr while a
// batch is processed. It stays silent when stderr is not a terminal.
type exportProgressBar struct {
	enabled         bool
	total           int
	current         int
	lastRenderWidth int
	label           string
	bar             progress.Model
}

func newExportProgressBar(total int) exportProgressBar {
	if total <= 0 {
		total = 1
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 32

	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 40 {
		width := cols - 40
		if width > 64 {
			width = 64
		}
		bar.Width = width
	}

	return exportProgressBar{
		enabled: isTerminal(os.Stderr),
		total:   total,
		bar:     bar,
	}
}

func (p *exportProgressBar) Advance(label string) {
	if !p.enabled {
		return
	}
	p.current++
	if p.current > p.total {
		p.current = p.total
	}
	p.label = label
	p.render()
}

func (p *exportProgressBar) Finish(label string) {
	if !p.enabled {
		return
	}
	p.current = p.total
	p.label = label
	p.render()
	fmt.Fprint(os.Stderr, "\n")
	p.lastRenderWidth = 0
}

func (p *exportProgressBar) Close() {
	if !p.enabled || p.lastRenderWidth == 0 {
		return
	}
	fmt.Fprint(os.Stderr, "\n")
	p.lastRenderWidth = 0
}

func (p *exportProgressBar) render() {
	percent := float64(p.current) / float64(p.total)
	if percent > 1 {
		percent = 1
	}
	line := fmt.Sprintf("%s %3.0f%% %d/%d %s", p.bar.ViewAs(percent), percent*100, p.current, p.total, strings.TrimSpace(p.label))
	pad := ""
	if p.lastRenderWidth > len(line) {
		pad = strings.Repeat(" ", p.lastRenderWidth-len(line))
	}
	fmt.Fprintf(os.Stderr, "\r%s%s", line, pad)
	p.lastRenderWidth = len(line)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
