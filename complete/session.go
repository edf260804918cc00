// Package complete implements the interactive prefix-completion session:
// incremental typing over a mode's topics, longest-common-prefix
// auto-extension, and cursor-controlled paging through ambiguous matches.
package complete

import (
	"strings"

	"github.com/fwojciec/helpdex"
)

// State describes the outcome of a completion request.
type State int

// Session states after a completion request.
const (
	StateNoMatch State = iota
	StateUnique
	StateAmbiguous
)

// DefaultPageSize is the number of matches shown per page when scrolling
// through an ambiguous candidate list.
const DefaultPageSize = 10

// Response is the result of one completion request.
type Response struct {
	State State

	// Matches holds every topic tuple whose topic starts with the typed
	// prefix, in sorted order.
	Matches []helpdex.Topic

	// Extension is the longest common prefix of all matches when it is
	// strictly longer than the typed prefix, empty otherwise. The caller
	// can substitute it for the typed text.
	Extension string

	// Selected is set when the typed prefix (or its extension) exactly
	// equals exactly one topic tuple.
	Selected *helpdex.Topic

	// Page is the currently visible window of Matches. Repeating the
	// same prefix advances the window instead of recomputing matches.
	Page []helpdex.Topic

	// Repeated reports whether this request only scrolled the page.
	Repeated bool
}

// Session is the state of one interactive completion over a mode's manuals.
// It is created at session start, mutated on each request, and discarded on
// accept or cancel. The topic list is cached on the first request and
// reused for the rest of the session; manuals mutating mid-session go
// unnoticed, which is an accepted limitation.
//
// All comparisons are case-sensitive ordinal matching, even where the
// surrounding UI is case-insensitive. This keeps completion predictable.
type Session struct {
	// PageSize controls the paging window. Set before the first request.
	PageSize int

	registry helpdex.ManualRegistry
	mode     string

	all    []helpdex.Topic
	cached bool

	lastPrefix  string
	hasLast     bool
	lastMatches []helpdex.Topic
	cursor      int
	selected    *helpdex.Topic
}

// NewSession begins a completion session for the given mode.
func NewSession(reg helpdex.ManualRegistry, mode string) *Session {
	return &Session{
		PageSize: DefaultPageSize,
		registry: reg,
		mode:     mode,
	}
}

// Type handles one completion request for the current typed prefix. An
// unchanged prefix pages through the previous matches; a new prefix
// recomputes them.
func (s *Session) Type(prefix string) Response {
	if !s.cached {
		s.all = helpdex.AllTopics(s.registry.ManualsForMode(s.mode))
		s.cached = true
	}

	if s.hasLast && prefix == s.lastPrefix {
		return s.scroll()
	}

	var matches []helpdex.Topic
	for _, tu := range s.all {
		if strings.HasPrefix(tu.Topic, prefix) {
			matches = append(matches, tu)
		}
	}

	s.lastPrefix = prefix
	s.hasLast = true
	s.lastMatches = matches
	s.cursor = 0
	s.selected = nil

	resp := Response{Matches: matches}
	switch len(matches) {
	case 0:
		resp.State = StateNoMatch
	case 1:
		resp.State = StateUnique
		s.selected = &matches[0]
	default:
		resp.State = StateAmbiguous
		if ext := commonPrefix(matches); len(ext) > len(prefix) {
			resp.Extension = ext
		}
		candidate := prefix
		if resp.Extension != "" {
			candidate = resp.Extension
		}
		s.selected = uniqueExact(matches, candidate)
	}
	resp.Selected = s.selected
	resp.Page = s.page()
	return resp
}

// Accept ends the session successfully when the typed text exactly equals
// the selected topic, or when the typed text is empty; it then yields the
// selected tuple, which may be nil. Any other typed text is rejected with
// EINVALID and the session stays open.
func (s *Session) Accept(typed string) (*helpdex.Topic, error) {
	if typed == "" {
		return s.selected, nil
	}
	if s.selected != nil && typed == s.selected.Topic {
		return s.selected, nil
	}
	return nil, helpdex.Errorf(helpdex.EINVALID, "%q is not a complete topic", typed)
}

// Cancel ends the session with no result.
func (s *Session) Cancel() {
	s.selected = nil
	s.lastMatches = nil
	s.hasLast = false
}

// scroll advances the paging cursor through the previously computed
// matches, wrapping back to the top past the end.
func (s *Session) scroll() Response {
	if n := len(s.lastMatches); n > 0 {
		s.cursor += s.pageSize()
		if s.cursor >= n {
			s.cursor = 0
		}
	}
	resp := Response{
		Matches:  s.lastMatches,
		Selected: s.selected,
		Page:     s.page(),
		Repeated: true,
	}
	switch len(s.lastMatches) {
	case 0:
		resp.State = StateNoMatch
	case 1:
		resp.State = StateUnique
	default:
		resp.State = StateAmbiguous
	}
	return resp
}

func (s *Session) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return DefaultPageSize
}

func (s *Session) page() []helpdex.Topic {
	if s.cursor >= len(s.lastMatches) {
		return nil
	}
	end := s.cursor + s.pageSize()
	if end > len(s.lastMatches) {
		end = len(s.lastMatches)
	}
	return s.lastMatches[s.cursor:end]
}

// commonPrefix returns the longest common prefix of all matched topics.
func commonPrefix(matches []helpdex.Topic) string {
	prefix := matches[0].Topic
	for _, tu := range matches[1:] {
		for !strings.HasPrefix(tu.Topic, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return ""
		}
	}
	return prefix
}

// uniqueExact returns the single tuple whose topic equals candidate, or nil
// if zero or several tuples do.
func uniqueExact(matches []helpdex.Topic, candidate string) *helpdex.Topic {
	var found *helpdex.Topic
	for i := range matches {
		if matches[i].Topic == candidate {
			if found != nil {
				return nil
			}
			found = &matches[i]
		}
	}
	return found
}
