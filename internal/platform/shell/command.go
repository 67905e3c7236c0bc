package shell

import (
	"strings"
)

// Command is a single external program invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Name is the program to run, resolved through PATH.
	Name string

	// Args are passed to the program verbatim, without shell interpretation.
	Args []string
}

// New returns a Command running name with args in dir.
func New(dir, name string, args ...string) Command {
	return Command{Dir: dir, Name: name, Args: args}
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
