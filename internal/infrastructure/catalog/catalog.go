// Package catalog provides the static item catalog. The real data source
// (game item tables) lives outside this system; here it is a read-only
// lookup loaded once at startup.
package catalog

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"invclean/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type Memory struct {
	items map[entity.ItemID]entity.ItemRecord
}

func NewMemory(records ...entity.ItemRecord) *Memory {
	items := make(map[entity.ItemID]entity.ItemRecord, len(records))
	for _, rec := range records {
		items[rec.ID] = rec
	}

	return &Memory{items: items}
}

func (m *Memory) Lookup(id entity.ItemID) (entity.ItemRecord, bool) {
	rec, ok := m.items[id]
	return rec, ok
}

func (m *Memory) Len() int {
	return len(m.items)
}

// LoadFile reads a JSON array of item records.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var records []entity.ItemRecord

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return NewMemory(records...), nil
}
