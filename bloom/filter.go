// Package bloom provides approximate topic membership using Bloom filters.
// Lookups use it as a negative cache: a miss proves the topic exists in no
// manual, so the search can be skipped outright.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// TopicFilter wraps a Bloom filter over topic strings.
type TopicFilter struct {
	f *bloom.BloomFilter
}

// NewTopicFilter creates a filter sized for n expected topics with the
// given false positive rate.
func NewTopicFilter(n uint, fpRate float64) *TopicFilter {
	return &TopicFilter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records a topic in the filter.
func (f *TopicFilter) Add(topic string) {
	f.f.AddString(topic)
}

// Test returns true if the topic might be indexed. False positives are
// possible; false negatives are not.
func (f *TopicFilter) Test(topic string) bool {
	return f.f.TestString(topic)
}

// EstimatedCount returns the approximate number of topics in the filter.
func (f *TopicFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
