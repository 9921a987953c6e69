package entity

import "slices"

// Blacklist holds item ids the user excluded from discarding. Pinned ids
// are built in and survive every user edit.
type Blacklist struct {
	pinned map[ItemID]struct{}
	user   map[ItemID]struct{}
}

func NewBlacklist(pinned []ItemID, user []ItemID) Blacklist {
	bl := Blacklist{
		pinned: make(map[ItemID]struct{}, len(pinned)),
		user:   make(map[ItemID]struct{}, len(user)),
	}

	for _, id := range pinned {
		bl.pinned[id] = struct{}{}
	}

	for _, id := range user {
		if _, ok := bl.pinned[id]; ok {
			continue
		}

		bl.user[id] = struct{}{}
	}

	return bl
}

func (b Blacklist) Contains(id ItemID) bool {
	if _, ok := b.pinned[id]; ok {
		return true
	}

	_, ok := b.user[id]

	return ok
}

func (b Blacklist) IsPinned(id ItemID) bool {
	_, ok := b.pinned[id]
	return ok
}

// WithUser returns a blacklist with the user part replaced. Pinned ids are
// kept regardless of the new user list.
func (b Blacklist) WithUser(user []ItemID) Blacklist {
	pinned := make([]ItemID, 0, len(b.pinned))
	for id := range b.pinned {
		pinned = append(pinned, id)
	}

	return NewBlacklist(pinned, user)
}

func (b Blacklist) IDs() []ItemID {
	ids := make([]ItemID, 0, len(b.pinned)+len(b.user))

	for id := range b.pinned {
		ids = append(ids, id)
	}

	for id := range b.user {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// UserIDs returns only the user-editable part, for persistence.
func (b Blacklist) UserIDs() []ItemID {
	ids := make([]ItemID, 0, len(b.user))
	for id := range b.user {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
