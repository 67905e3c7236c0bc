package wizard

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
)

// InputPrompt describes a free-text question.
type InputPrompt struct {
	Title       string
	Description string
	Placeholder string

	// Validate blocks submission while it returns an error.
	Validate func(string) error
}

// SelectPrompt describes a single-choice question.
type SelectPrompt struct {
	Title   string
	Options []string
}

// Prompter asks questions and returns the raw answers.
type Prompter interface {
	Input(ctx context.Context, p InputPrompt) (string, error)
	Select(ctx context.Context, p SelectPrompt) (string, error)
}

// HuhPrompter implements Prompter with one huh form per question.
//
// In accessible mode every prompt reads from the same line-at-a-time view of
// In, and running out of input fails the prompt with io.ErrUnexpectedEOF
// instead of picking a default answer.
type HuhPrompter struct {
	In  io.Reader
	Out io.Writer

	// Accessible switches huh to line-based prompts.
	Accessible bool

	lines *lineReader
}

// Input implements Prompter.
func (h *HuhPrompter) Input(ctx context.Context, p InputPrompt) (string, error) {
	var value string

	field := huh.NewInput().
		Title(p.Title).
		Description(p.Description).
		Placeholder(p.Placeholder).
		Value(&value)
	if p.Validate != nil {
		field = field.Validate(p.Validate)
	}

	if err := h.run(ctx, h.form(field)); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Prompter.
func (h *HuhPrompter) Select(ctx context.Context, p SelectPrompt) (answer string, err error) {
	var value string

	field := huh.NewSelect[string]().
		Title(p.Title).
		Options(huh.NewOptions(p.Options...)...).
		Value(&value)

	// huh indexes the options with the last rejected line when the input
	// ends mid-question.
	defer func() {
		if r := recover(); r != nil {
			if h.lines == nil || !h.lines.exhausted() {
				panic(r)
			}
			answer, err = "", fmt.Errorf("%s: %w", p.Title, io.ErrUnexpectedEOF)
		}
	}()

	if err := h.run(ctx, h.form(field)); err != nil {
		return "", err
	}
	return value, nil
}

// run executes f. In accessible mode a form that hit the end of the input
// did not get an answer.
func (h *HuhPrompter) run(ctx context.Context, f *huh.Form) error {
	if err := f.RunWithContext(ctx); err != nil {
		return err
	}
	if h.lines != nil && h.lines.exhausted() {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (h *HuhPrompter) form(fields ...huh.Field) *huh.Form {
	f := huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(h.Accessible).
		WithShowHelp(!h.Accessible)
	switch {
	case h.Accessible:
		if h.lines == nil {
			in := h.In
			if in == nil {
				in = os.Stdin
			}
			h.lines = newLineReader(in)
		}
		f = f.WithInput(h.lines)
	case h.In != nil:
		f = f.WithInput(h.In)
	}
	if h.Out != nil {
		f = f.WithOutput(h.Out)
	}
	return f
}
