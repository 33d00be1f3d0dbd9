// Package keymap defines key bindings and resolves terminal input to
// session commands.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/mpdwaves/internal/session"
)

// Context scopes a binding. Search bindings shadow global ones while the
// query is being typed.
type Context string

const (
	Global Context = "global"
	Search Context = "search"
)

// Binding ties keys to a command.
type Binding struct {
	Command session.Command
	Key     key.Binding
	Context Context
}

func bind(ctx Context, cmd session.Command, keys ...string) Binding {
	return Binding{
		Command: cmd,
		Key:     key.NewBinding(key.WithKeys(keys...)),
		Context: ctx,
	}
}

// ByContext returns the bindings of one context.
func ByContext(bindings []Binding, ctx Context) []Binding {
	var result []Binding
	for _, b := range bindings {
		if b.Context == ctx {
			result = append(result, b)
		}
	}
	return result
}
