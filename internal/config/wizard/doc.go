// Package wizard collects a project.Request interactively.
//
// Prompts go through the Prompter interface. HuhPrompter renders them with
// charmbracelet/huh, either as a full TUI or, in accessible mode, as plain
// line-based questions suitable for pipes and screen readers.
//
// The main entry point is Collect, which asks for the project name until a
// valid one is given and then asks the add-on questions in Questions.
package wizard
