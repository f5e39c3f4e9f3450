// Package router keeps the stack of screens and applies navigation
// messages to it. Only the top screen receives input and renders.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/screen"
)

// Navigation messages. Screens return them from commands; the router
// handles them before anything reaches the active screen.
type (
	PushScreenMsg    struct{ Screen screen.Screen }
	ReplaceScreenMsg struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	PopToRootMsg     struct{}
)

// Router is a screen stack with the root at index 0. The root is never
// popped. Screens implementing screen.Closer are closed exactly once,
// when they leave the stack or when the router itself is closed.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Depth() int { return len(r.stack) }

// Active is the top screen, nil only for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Push starts s on top of the stack.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the top screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) < 2 {
		return nil
	}
	r.drop()
	return nil
}

// Replace closes the top screen and starts s in its slot, so a flow like
// quiz → summary does not grow the stack.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) > 0 {
		r.drop()
	}
	return r.Push(s)
}

func (r *Router) PopToRoot() tea.Cmd {
	for len(r.stack) > 1 {
		r.drop()
	}
	return nil
}

// Close closes every screen, top first. Used on program exit.
func (r *Router) Close() {
	for len(r.stack) > 0 {
		r.drop()
	}
}

func (r *Router) drop() {
	last := len(r.stack) - 1
	if c, ok := r.stack[last].(screen.Closer); ok {
		c.Close()
	}
	r.stack[last] = nil
	r.stack = r.stack[:last]
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	}

	if len(r.stack) == 0 {
		return nil
	}
	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
