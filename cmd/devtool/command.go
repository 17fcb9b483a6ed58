package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUsage is returned when the arguments do not name a known command
var ErrUsage = errors.New("usage")

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry dispatches argv to the registered commands
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining arguments.
// Unknown or missing commands print help to out and return ErrUsage.
func (r *Registry) Dispatch(out io.Writer, args []string) error {
	if len(args) == 0 {
		r.PrintHelp(out)
		return ErrUsage
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		fmt.Fprintf(out, "unknown command: %s\n\n", args[0])
		r.PrintHelp(out)
		return ErrUsage
	}

	if err := cmd.Run(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}

func (r *Registry) PrintHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage: devtool <command> [args...]")
	fmt.Fprintln(out, "\nCommands:")

	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(out, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}
