package helpdex

import "sort"

// Topic is the unit returned by every search operation: a topic heading, the
// manual it came from, and one destination link. A single query can
// legitimately produce several tuples for the same topic text.
type Topic struct {
	Topic  string `json:"topic"`
	Manual string `json:"manual"`
	Link   string `json:"link"`
}

// SearchManual looks up an exact topic in one manual and returns one tuple
// per associated link, in insertion order. Returns an empty slice if the
// topic is absent.
func SearchManual(m *Manual, topic string) []Topic {
	links := m.Links(topic)
	out := make([]Topic, 0, len(links))
	for _, link := range links {
		out = append(out, Topic{Topic: topic, Manual: m.Name, Link: link})
	}
	return out
}

// SearchManuals looks up an exact topic across manuals, concatenating
// results in manual order. Hits from different manuals are not
// deduplicated: every manual's match is reported.
func SearchManuals(manuals []*Manual, topic string) []Topic {
	var out []Topic
	for _, m := range manuals {
		out = append(out, SearchManual(m, topic)...)
	}
	return out
}

// SearchForMode resolves the manuals applicable in a mode through the
// registry and searches them for an exact topic.
func SearchForMode(reg ManualRegistry, mode, topic string) []Topic {
	return SearchManuals(reg.ManualsForMode(mode), topic)
}

// AllTopics flattens every topic/link pair from the given manuals and sorts
// the result ascending by topic text using ordinal (byte-wise,
// case-sensitive) comparison. Works for any manual set including zero or
// one manual. Used for bulk export and as the completion source.
func AllTopics(manuals []*Manual) []Topic {
	var out []Topic
	for _, m := range manuals {
		for _, topic := range m.Topics() {
			for _, link := range m.Links(topic) {
				out = append(out, Topic{Topic: topic, Manual: m.Name, Link: link})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Topic < out[j].Topic
	})
	return out
}
