// Package keymap defines key bindings and action dispatch for the application.
package keymap

import "strings"

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit   Action = "quit"
	ActionSelect Action = "select"
	ActionBack   Action = "back"
)

// Context names the screen a binding applies to.
type Context string

const (
	ContextGlobal  Context = "global"
	ContextGenres  Context = "genres"
	ContextResults Context = "results"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     Context
}

// All contains every binding. List navigation keys (j/k/g/G/ctrl+d/ctrl+u)
// are handled by the list component and appear here only for help output.
var All = []Binding{
	{[]string{"q", "ctrl+c"}, ActionQuit, "quit", ContextGlobal},

	{[]string{"j", "k"}, "", "move", ContextGenres},
	{[]string{"enter"}, ActionSelect, "recommend", ContextGenres},

	{[]string{"esc", "backspace", "h"}, ActionBack, "genres", ContextResults},
}

// ByContext returns the bindings of one context.
func ByContext(ctx Context) []Binding {
	var result []Binding
	for _, b := range All {
		if b.Context == ctx {
			result = append(result, b)
		}
	}
	return result
}

// Help renders "key desc · key desc" for the given contexts, in order.
func Help(contexts ...Context) string {
	var parts []string
	for _, ctx := range contexts {
		for _, b := range ByContext(ctx) {
			parts = append(parts, strings.Join(b.Keys, "/")+" "+b.Description)
		}
	}
	return strings.Join(parts, " · ")
}
