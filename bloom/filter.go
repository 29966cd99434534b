// Package bloom tracks title URLs already seen during country discovery.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a probabilistic set of title URLs.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected titles with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether key may have been added before and adds it.
// A false positive makes a new title look like a duplicate; a title that
// was added is never reported as new.
func (f *Filter) Seen(key string) bool {
	return f.f.TestAndAddString(key)
}

// Test reports whether key may be in the filter without adding it.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of distinct keys added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
