package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/flixsearch"
)

var _ flixsearch.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore is a mock implementation of flixsearch.PreferenceStore.
type PreferenceStore struct {
	ActiveCountriesFn    func(ctx context.Context) ([]string, error)
	SetActiveCountriesFn func(ctx context.Context, countries []string) error
	ResetFn              func(ctx context.Context) error
}

func (s *PreferenceStore) ActiveCountries(ctx context.Context) ([]string, error) {
	return s.ActiveCountriesFn(ctx)
}

func (s *PreferenceStore) SetActiveCountries(ctx context.Context, countries []string) error {
	return s.SetActiveCountriesFn(ctx, countries)
}

func (s *PreferenceStore) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}

// NewMemoryPreferenceStore returns a PreferenceStore backed by a slice,
// seeded with countries.
func NewMemoryPreferenceStore(countries ...string) *PreferenceStore {
	var mu sync.Mutex
	active := append([]string{}, countries...)
	return &PreferenceStore{
		ActiveCountriesFn: func(context.Context) ([]string, error) {
			mu.Lock()
			defer mu.Unlock()
			return append([]string{}, active...), nil
		},
		SetActiveCountriesFn: func(_ context.Context, countries []string) error {
			mu.Lock()
			defer mu.Unlock()
			active = append([]string{}, countries...)
			return nil
		},
		ResetFn: func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			active = nil
			return nil
		},
	}
}

var _ flixsearch.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of flixsearch.Notifier.
type Notifier struct {
	NotifyFn func(ctx context.Context, trigger, argument string) error
}

func (n *Notifier) Notify(ctx context.Context, trigger, argument string) error {
	return n.NotifyFn(ctx, trigger, argument)
}
