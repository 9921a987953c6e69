package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"invclean/internal/domain/entity"
	"invclean/internal/domain/service/eligibility"
)

func testRecord(id entity.ItemID) entity.ItemRecord {
	return entity.ItemRecord{
		ID:           id,
		Name:         "Rat Tail",
		CategoryID:   10,
		CategoryName: "Reagent",
	}
}

func TestIsDiscardable(t *testing.T) {
	empty := entity.NewBlacklist(nil, nil)

	testCases := []struct {
		name      string
		rec       entity.ItemRecord
		blacklist entity.Blacklist
		want      bool
	}{
		{
			name:      "plain item",
			rec:       testRecord(1001),
			blacklist: empty,
			want:      true,
		},
		{
			name:      "blacklisted",
			rec:       testRecord(1001),
			blacklist: entity.NewBlacklist(nil, []entity.ItemID{1001}),
			want:      false,
		},
		{
			name:      "pinned blacklist entry",
			rec:       testRecord(1001),
			blacklist: entity.NewBlacklist([]entity.ItemID{1001}, nil),
			want:      false,
		},
		{
			name: "blacklist wins over every other fact",
			rec: entity.ItemRecord{
				ID: 1002, Name: "Vendor Trash", CategoryID: 10, CanBuyFromVendor: true,
			},
			blacklist: entity.NewBlacklist(nil, []entity.ItemID{1002}),
			want:      false,
		},
		{
			name: "currency",
			rec: entity.ItemRecord{
				ID: 1, Name: "Gil", CategoryID: entity.CategoryCurrency,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "crystal",
			rec: entity.ItemRecord{
				ID: 2, Name: "Fire Shard", CategoryID: entity.CategoryCrystal,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "unobtainable category",
			rec: entity.ItemRecord{
				ID: 3, Name: "Preorder Bonus", CategoryID: entity.CategoryUnobtainable,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "unknown category is conservative",
			rec: entity.ItemRecord{
				ID: 4, Name: "Mystery", CategoryID: entity.CategoryUnknown,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "missing name is conservative",
			rec: entity.ItemRecord{
				ID: 5, CategoryID: 10,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "indisposable flag",
			rec: entity.ItemRecord{
				ID: 6, Name: "Soul Crystal", CategoryID: 10, IsIndisposable: true,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "unique untradeable without vendor source",
			rec: entity.ItemRecord{
				ID: 7, Name: "Relic", CategoryID: 10,
				IsUnique: true, IsUntradeable: true, CanBuyFromVendor: false,
			},
			blacklist: empty,
			want:      false,
		},
		{
			name: "unique untradeable but vendor sells it",
			rec: entity.ItemRecord{
				ID: 8, Name: "Guild Uniform", CategoryID: 10,
				IsUnique: true, IsUntradeable: true, CanBuyFromVendor: true,
			},
			blacklist: empty,
			want:      true,
		},
		{
			name: "unique but tradeable",
			rec: entity.ItemRecord{
				ID: 9, Name: "Rare Ring", CategoryID: 10,
				IsUnique: true, IsUntradeable: false,
			},
			blacklist: empty,
			want:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			rq.Equal(tc.want, eligibility.IsDiscardable(tc.rec, tc.blacklist))
		})
	}
}

func TestIsSelectableIgnoresBlacklist(t *testing.T) {
	rq := require.New(t)

	rec := testRecord(1001)

	rq.True(eligibility.IsSelectable(rec))
	rq.False(eligibility.IsDiscardable(rec, entity.NewBlacklist(nil, []entity.ItemID{1001})))
}
