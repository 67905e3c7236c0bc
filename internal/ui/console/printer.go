// Package console renders user-facing status output with lipgloss styles.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled status lines. Color is decided by the destination:
// a plain buffer or pipe gets unstyled text.
type Printer struct {
	out io.Writer
	st  styles
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{
		out: out,
		st:  newStyles(lipgloss.NewRenderer(out)),
	}
}

// Stdout returns a Printer for os.Stdout.
func Stdout() *Printer {
	return New(os.Stdout)
}

// Writer returns the underlying destination.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Banner prints the run title.
func (p *Printer) Banner(title string) {
	p.line(p.st.title.Render(title))
}

// Section prints a heading separated from previous output by a blank line.
func (p *Printer) Section(title string) {
	p.line(p.st.section.Render(title))
}

// Progress prints the start of a long-running action.
func (p *Printer) Progress(format string, args ...any) {
	p.line(p.st.info.Render(spinner + " " + fmt.Sprintf(format, args...)))
}

// Info prints a neutral status line.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.st.info.Render(infoMark + " " + fmt.Sprintf(format, args...)))
}

// Success prints a completed status line.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.st.success.Render(checkMark + " " + fmt.Sprintf(format, args...)))
}

// Fail prints a failure status line.
func (p *Printer) Fail(format string, args ...any) {
	p.line(p.st.failure.Render(crossMark + " " + fmt.Sprintf(format, args...)))
}

// Warn prints a yellow line without a status mark.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.st.warning.Render(fmt.Sprintf(format, args...)))
}

// Good prints a green line without a status mark.
func (p *Printer) Good(format string, args ...any) {
	p.line(p.st.success.Render(fmt.Sprintf(format, args...)))
}

// Hint prints a cyan line without a status mark.
func (p *Printer) Hint(format string, args ...any) {
	p.line(p.st.hint.Render(fmt.Sprintf(format, args...)))
}

// Dim prints a de-emphasized line.
func (p *Printer) Dim(format string, args ...any) {
	p.line(p.st.dim.Render(fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Label prints "label value" with the label in yellow.
func (p *Printer) Label(label, value string) {
	p.line(p.st.warning.Render(label) + " " + value)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}
