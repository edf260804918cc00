// Package helpdex provides a local, CLI-based help-topic lookup tool.
// It builds named manuals (topic to link indexes) from reference documents,
// groups them by context mode, and answers exact-topic and prefix-completion
// queries with destination links. It never opens links itself; callers
// receive link strings and decide what to do with them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, yaml/).
package helpdex
