package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/helpdex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ helpdex.ManualStore = (*ManualStore)(nil)

// ManualStore implements helpdex.ManualStore using SQLite.
type ManualStore struct {
	db *DB
}

// NewManualStore creates a new ManualStore.
func NewManualStore(db *DB) *ManualStore {
	return &ManualStore{db: db}
}

// SaveManuals replaces the stored manual set wholesale, mirroring the
// registry's rebuild-not-diff rule.
func (s *ManualStore) SaveManuals(ctx context.Context, manuals []*helpdex.Manual) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM manuals"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, m := range manuals {
		if err := m.Validate(); err != nil {
			return err
		}

		manualID := uuid.New().String()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO manuals (id, name, source_path, source_hash, modes, last_modified, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, manualID, m.Name, m.SourcePath, m.SourceHash,
			strings.Join(m.Modes(), "\n"),
			// Nanosecond precision so a restored timestamp still
			// compares equal to the file's mtime.
			m.LastModified.Format(time.RFC3339Nano),
			now)
		if err != nil {
			return err
		}

		position := 0
		for _, topic := range m.Topics() {
			for _, link := range m.Links(topic) {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO topics (id, manual_id, topic, link, position)
					VALUES (?, ?, ?, ?, ?)
				`, uuid.New().String(), manualID, topic, link, position)
				if err != nil {
					return err
				}
				position++
			}
		}
	}

	return tx.Commit()
}

// LoadManuals returns all stored manuals with their topics in original
// insertion order.
func (s *ManualStore) LoadManuals(ctx context.Context) ([]*helpdex.Manual, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, source_path, source_hash, modes, last_modified
		FROM manuals
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var manuals []*helpdex.Manual
	ids := make(map[string]string) // manual id -> name
	byName := make(map[string]*helpdex.Manual)

	for rows.Next() {
		var id, name, sourcePath, sourceHash, modes, lastModified string
		if err := rows.Scan(&id, &name, &sourcePath, &sourceHash, &modes, &lastModified); err != nil {
			return nil, err
		}

		modTime, err := time.Parse(time.RFC3339Nano, lastModified)
		if err != nil {
			return nil, helpdex.Errorf(helpdex.EINTERNAL, "parse last_modified: %v", err)
		}

		m := helpdex.NewManual(name, sourcePath, modTime)
		m.SourceHash = sourceHash
		if modes != "" {
			m.AssociateModes(strings.Split(modes, "\n")...)
		}

		manuals = append(manuals, m)
		ids[id] = name
		byName[name] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	topicRows, err := s.db.QueryContext(ctx, `
		SELECT manual_id, topic, link
		FROM topics
		ORDER BY manual_id, position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer topicRows.Close()

	for topicRows.Next() {
		var manualID, topic, link string
		if err := topicRows.Scan(&manualID, &topic, &link); err != nil {
			return nil, err
		}
		if name, ok := ids[manualID]; ok {
			byName[name].AddTopic(topic, link)
		}
	}
	if err := topicRows.Err(); err != nil {
		return nil, err
	}

	return manuals, nil
}

// DeleteManuals removes all stored manuals and their topics.
func (s *ManualStore) DeleteManuals(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM manuals")
	return err
}
