package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/rnsetup/internal/project"
	"github.com/imamik/rnsetup/internal/ui/console"
)

// nameState is a step of the name collection loop.
type nameState int

const (
	statePrompting nameState = iota
	stateValidating
	stateRejected
	stateAccepted
)

// Collect runs the whole wizard: the project name first, then every add-on question.
func Collect(ctx context.Context, p Prompter, out *console.Printer) (project.Request, error) {
	name, err := CollectName(ctx, p, out)
	if err != nil {
		return project.Request{}, fmt.Errorf("project name: %w", err)
	}

	req := project.Request{Name: name}
	if err := CollectOptions(ctx, p, &req); err != nil {
		return project.Request{}, fmt.Errorf("add-ons: %w", err)
	}
	return req, nil
}

// CollectName asks for the project name until a valid one is entered.
// The prompt validator already blocks bad input; the loop re-checks the
// submitted value and starts over if it still does not pass. There is no
// attempt limit.
func CollectName(ctx context.Context, p Prompter, out *console.Printer) (project.Name, error) {
	var (
		input  string
		reason error
	)

	state := statePrompting
	for {
		switch state {
		case statePrompting:
			v, err := p.Input(ctx, namePrompt)
			if err != nil {
				return "", err
			}
			input = v
			state = stateValidating

		case stateValidating:
			if reason = project.ValidateName(input); reason != nil {
				state = stateRejected
			} else {
				state = stateAccepted
			}

		case stateRejected:
			out.Fail("Invalid name. Try again.")
			out.Dim("  %v", reason)
			out.Label("Examples:", strings.Join(project.Examples, ", "))
			state = statePrompting

		case stateAccepted:
			return project.Name(input), nil
		}
	}
}

// CollectOptions asks every question in Questions and records the answers on req.
// No combination is rejected; a navigator without React Navigation is allowed.
func CollectOptions(ctx context.Context, p Prompter, req *project.Request) error {
	for _, q := range Questions {
		answer, err := p.Select(ctx, SelectPrompt{Title: q.Title, Options: YesNo})
		if err != nil {
			return fmt.Errorf("%s: %w", q.Key, err)
		}
		q.set(req, IsYes(answer))
	}
	return nil
}
