// Package persistence keeps the user's discard selection and exclusion
// list on disk. The store is the single owner of both sets; readers get
// snapshots, writers replace whole collections.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"invclean/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type fileState struct {
	Selection []entity.ItemID `json:"selection"`
	Blacklist []entity.ItemID `json:"blacklist"`
}

type FileSelectionStore struct {
	path   string
	pinned []entity.ItemID

	mu        sync.RWMutex
	selection map[entity.ItemID]struct{}
	blacklist entity.Blacklist
}

// NewFileSelectionStore loads state from path if it exists. Pinned
// blacklist ids are enforced on load and on every edit.
func NewFileSelectionStore(path string, pinned []entity.ItemID) (*FileSelectionStore, error) {
	store := &FileSelectionStore{
		path:      path,
		pinned:    slices.Clone(pinned),
		selection: make(map[entity.ItemID]struct{}),
		blacklist: entity.NewBlacklist(pinned, nil),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}

		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var state fileState

	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	for _, id := range state.Selection {
		store.selection[id] = struct{}{}
	}

	store.blacklist = entity.NewBlacklist(pinned, state.Blacklist)

	return store, nil
}

func (s *FileSelectionStore) Selection() []entity.ItemID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]entity.ItemID, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

func (s *FileSelectionStore) IsSelected(id entity.ItemID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.selection[id]

	return ok
}

func (s *FileSelectionStore) ReplaceSelection(ids []entity.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = make(map[entity.ItemID]struct{}, len(ids))
	for _, id := range ids {
		s.selection[id] = struct{}{}
	}

	return s.saveLocked()
}

func (s *FileSelectionStore) Remove(ids ...entity.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.selection, id)
	}

	return s.saveLocked()
}

func (s *FileSelectionStore) Blacklist() entity.Blacklist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.blacklist
}

// ReplaceBlacklist replaces the user part of the exclusion list. Pinned ids
// cannot be removed.
func (s *FileSelectionStore) ReplaceBlacklist(ids []entity.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist = entity.NewBlacklist(s.pinned, ids)

	return s.saveLocked()
}

// saveLocked writes to a sibling temp file and renames it into place, so a
// crash mid-write never truncates the previous state.
func (s *FileSelectionStore) saveLocked() error {
	state := fileState{
		Selection: make([]entity.ItemID, 0, len(s.selection)),
		Blacklist: s.blacklist.UserIDs(),
	}

	for id := range s.selection {
		state.Selection = append(state.Selection, id)
	}

	slices.Sort(state.Selection)

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}
