package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func WarningLabel() string {
	return warningStyle.Render("Warning")
}

func ErrorLabel() string {
	return errorStyle.Render("Error")
}

// Console prints phases and warnings to out and draws one group of
// progress bars per phase on bars.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	bars  io.Writer
	group *mpb.Progress
}

func NewConsole(out io.Writer, bars io.Writer) *Console {
	return &Console{out: out, bars: bars}
}

func (c *Console) Phase(n int, total int, msg string) {
	c.Wait()
	fmt.Fprintf(c.out, "[%d/%d] %s\n", n, total, msg)
}

func (c *Console) Warn(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "      %s: %s\n", WarningLabel(), msg)
}

func (c *Console) Bar(name string) Reporter {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.group == nil {
		c.group = mpb.New(mpb.WithOutput(c.bars), mpb.WithWidth(64))
	}
	bar := c.group.New(0,
		mpb.BarStyle().Lbound("").Filler("#").Tip(">").Padding("-").Rbound(""),
		mpb.PrependDecorators(decor.Name(name, decor.WCSyncSpaceR)),
		mpb.AppendDecorators(decor.CountersNoUnit("%d/%d", decor.WCSyncWidth)),
		mpb.BarRemoveOnComplete(),
	)
	return &barReporter{bar: bar}
}

func (c *Console) Wait() {
	c.mu.Lock()
	group := c.group
	c.group = nil
	c.mu.Unlock()
	if group != nil {
		group.Wait()
	}
}

type barReporter struct {
	once sync.Once
	bar  *mpb.Bar
}

func (r *barReporter) SetTotal(total int64) {
	r.bar.SetTotal(total, false)
}

func (r *barReporter) Increment(n int64) {
	r.bar.IncrInt64(n)
}

func (r *barReporter) Finish() {
	r.once.Do(func() {
		r.bar.SetTotal(-1, true)
	})
}
