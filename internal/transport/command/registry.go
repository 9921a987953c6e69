// Package command routes chat-style slash commands to their handlers.
package command

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type HandlerFunc func(ctx context.Context, args string) error

type registration struct {
	help    string
	handler HandlerFunc
}

type Registry struct {
	mu       sync.RWMutex
	commands map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]registration),
	}
}

func (r *Registry) Register(name, help string, handler HandlerFunc) error {
	if !strings.HasPrefix(name, "/") {
		return fmt.Errorf("command name %q must start with /", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("command %q already registered", name)
	}

	r.commands[name] = registration{help: help, handler: handler}

	return nil
}

// Dispatch splits the input into command name and trailing arguments and
// invokes the matching handler.
func (r *Registry) Dispatch(ctx context.Context, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty command")
	}

	name, args, _ := strings.Cut(input, " ")

	r.mu.RLock()
	reg, ok := r.commands[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}

	return reg.handler(ctx, strings.TrimSpace(args))
}

// Help returns one line per registered command, sorted by name.
func (r *Registry) Help() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]string, 0, len(r.commands))
	for name, reg := range r.commands {
		lines = append(lines, name+" "+reg.help)
	}

	sort.Strings(lines)

	return lines
}
