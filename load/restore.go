package load

import (
	"context"
	"os"

	"github.com/fwojciec/helpdex"
)

// Restore populates the registry from the snapshot store instead of
// re-parsing sources. It reports false — leaving the registry untouched —
// when the store is empty or any stored manual is stale, in which case the
// caller should run a full Load.
//
// A stored manual is fresh when its source file still exists and either the
// modification time is unchanged or, for a touched-but-identical file, the
// content fingerprint still matches.
func (l *Loader) Restore(ctx context.Context) (bool, error) {
	if l.Store == nil {
		return false, nil
	}

	manuals, err := l.Store.LoadManuals(ctx)
	if err != nil {
		return false, err
	}
	if len(manuals) == 0 {
		return false, nil
	}

	for _, m := range manuals {
		if !fresh(m) {
			l.logger().Info("snapshot stale", "manual", m.Name, "path", m.SourcePath)
			return false, nil
		}
	}

	l.Registry.Reset()
	for _, stored := range manuals {
		m := l.Registry.CreateManual(stored.Name, stored.SourcePath, stored.LastModified)
		m.SourceHash = stored.SourceHash
		for _, topic := range stored.Topics() {
			for _, link := range stored.Links(topic) {
				m.AddTopic(topic, link)
			}
		}
		m.AssociateModes(stored.Modes()...)
	}
	return true, nil
}

func fresh(m *helpdex.Manual) bool {
	info, err := os.Stat(m.SourcePath)
	if err != nil {
		return false
	}
	if info.ModTime().Equal(m.LastModified) {
		return true
	}
	if m.SourceHash == "" {
		return false
	}
	content, err := os.ReadFile(m.SourcePath)
	if err != nil {
		return false
	}
	return ContentHash(content) == m.SourceHash
}
