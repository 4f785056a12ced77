package session

import "github.com/jonathan/smarthire/internal/types"

// Notifier receives the notifications a Store emits for significant actions.
type Notifier interface {
	Notify(n types.Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(types.Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n types.Notification) {
	f(n)
}

// Buffer collects notifications until they are drained.
type Buffer struct {
	items []types.Notification
}

// Notify implements Notifier.
func (b *Buffer) Notify(n types.Notification) {
	b.items = append(b.items, n)
}

// Drain returns the buffered notifications and empties the buffer.
func (b *Buffer) Drain() []types.Notification {
	items := b.items
	b.items = nil
	return items
}

type discard struct{}

func (discard) Notify(types.Notification) {}
