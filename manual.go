package helpdex

import (
	"time"
)

// ModeWildcard marks a manual as applicable in every context mode.
// Once added to a manual's mode set it is never removed.
const ModeWildcard = "*"

// Manual is a named topic index built from one source document. A topic can
// map to several links, and the same topic can appear in several manuals.
type Manual struct {
	// Unique name within a registry. Derived from the source file's base
	// name, disambiguated with a numeric suffix on collision.
	Name string

	// Path of the source document the index was built from.
	SourcePath string

	// Fingerprint of the source content at build time (xxhash, hex).
	// Used together with LastModified to detect stale snapshots.
	SourceHash string

	// Modification time of the source document at build time.
	LastModified time.Time

	topics []string            // insertion order
	links  map[string][]string // topic -> links, duplicates suppressed
	modes  []string            // insertion order; may contain ModeWildcard
}

// NewManual returns an empty manual for the given source document.
func NewManual(name, sourcePath string, lastModified time.Time) *Manual {
	return &Manual{
		Name:         name,
		SourcePath:   sourcePath,
		LastModified: lastModified,
		links:        make(map[string][]string),
	}
}

// AddTopic records a topic/link pair. A link already present for the topic
// is suppressed. Empty topics are discarded. Reports whether the pair was
// added.
func (m *Manual) AddTopic(topic, link string) bool {
	if topic == "" {
		return false
	}
	existing, ok := m.links[topic]
	if !ok {
		m.topics = append(m.topics, topic)
	}
	for _, l := range existing {
		if l == link {
			return false
		}
	}
	m.links[topic] = append(existing, link)
	return true
}

// Topics returns all topics in insertion order.
func (m *Manual) Topics() []string {
	out := make([]string, len(m.topics))
	copy(out, m.topics)
	return out
}

// Links returns the links recorded for a topic, in insertion order.
// Returns nil if the topic is absent.
func (m *Manual) Links(topic string) []string {
	links, ok := m.links[topic]
	if !ok {
		return nil
	}
	out := make([]string, len(links))
	copy(out, links)
	return out
}

// Len returns the number of distinct topics in the manual.
func (m *Manual) Len() int {
	return len(m.topics)
}

// AssociateModes appends each mode not already present to the manual's mode
// set. Called with no modes it adds the wildcard marker, making the manual
// applicable in every context. Idempotent.
func (m *Manual) AssociateModes(modes ...string) {
	if len(modes) == 0 {
		modes = []string{ModeWildcard}
	}
	for _, mode := range modes {
		if !m.hasMode(mode) {
			m.modes = append(m.modes, mode)
		}
	}
}

// Modes returns the manual's mode set in insertion order. The returned
// slice may contain ModeWildcard.
func (m *Manual) Modes() []string {
	out := make([]string, len(m.modes))
	copy(out, m.modes)
	return out
}

// AppliesTo reports whether the manual is applicable in the given mode.
// A manual with the wildcard marker applies in every mode.
func (m *Manual) AppliesTo(mode string) bool {
	return m.hasMode(ModeWildcard) || m.hasMode(mode)
}

func (m *Manual) hasMode(mode string) bool {
	for _, have := range m.modes {
		if have == mode {
			return true
		}
	}
	return false
}

// Validate returns an error if the manual contains invalid fields.
func (m *Manual) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "manual name required")
	}
	if m.SourcePath == "" {
		return Errorf(EINVALID, "manual source path required")
	}
	return nil
}
