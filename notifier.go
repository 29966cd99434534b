package flixsearch

import "context"

// Notifier tells the presentation layer to re-run a view, for example the
// country list after a toggle. Results never depend on it.
type Notifier interface {
	Notify(ctx context.Context, trigger, argument string) error
}

// NopNotifier is a Notifier that does nothing.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(context.Context, string, string) error { return nil }
