package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
)

func TestCalendarRepository_PlanReplanUnplan(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCalendarRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, email(1), core.TierFree)
	shirt := seedItem(t, db, u.ID, "shirt", "tops")
	o := seedOutfit(t, db, u.ID, "O", shirt.ID)
	p := seedOutfit(t, db, u.ID, "P")

	entry, err := repo.Upsert(ctx, u.ID, "2024-06-01", o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, entry.OutfitID)
	require.NotNil(t, entry.Outfit)
	assert.Equal(t, []uint{shirt.ID}, memberIDs(*entry.Outfit))

	// re-plan overwrites, never duplicates
	entry, err = repo.Upsert(ctx, u.ID, "2024-06-01", p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, entry.OutfitID)
	assert.Equal(t, "P", entry.Outfit.Name)
	assert.EqualValues(t, 1, countRows(t, db, &models.CalendarEntry{}, "user_id = ?", u.ID))

	deleted, err := repo.DeleteByDate(ctx, u.ID, "2024-06-01")
	require.NoError(t, err)
	assert.True(t, deleted)

	// unplanning an empty date is a no-op success
	deleted, err = repo.DeleteByDate(ctx, u.ID, "2024-06-01")
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCalendarRepository_ForeignOutfit(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCalendarRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, email(1), core.TierFree)
	other := seedUser(t, db, email(2), core.TierFree)
	theirs := seedOutfit(t, db, other.ID, "Theirs")

	_, err := repo.Upsert(ctx, u.ID, "2024-06-01", theirs.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &models.CalendarEntry{}, "1 = 1"))
}

func TestCalendarRepository_ListIsPerUserAndOrdered(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCalendarRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, email(1), core.TierFree)
	other := seedUser(t, db, email(2), core.TierFree)
	mine := seedOutfit(t, db, u.ID, "Mine")
	theirs := seedOutfit(t, db, other.ID, "Theirs")

	for _, d := range []string{"2024-07-01", "2024-06-15", "2024-06-01"} {
		_, err := repo.Upsert(ctx, u.ID, d, mine.ID)
		require.NoError(t, err)
	}
	// same date for another user does not collide
	_, err := repo.Upsert(ctx, other.ID, "2024-06-01", theirs.ID)
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"2024-06-01", "2024-06-15", "2024-07-01"}, []string{list[0].Date, list[1].Date, list[2].Date})
	for _, e := range list {
		assert.Equal(t, mine.ID, e.OutfitID)
	}
}
