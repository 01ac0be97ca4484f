package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JabirC/Closet/config"
	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/models"
)

// newSQLiteDB opens a private in-memory database with the full schema.
// One connection keeps the memory DB alive and serializes transactions.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, tier string) *models.User {
	t.Helper()
	u := &models.User{Name: "Test", Email: email, Password: "hash", Tier: tier}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedItem(t *testing.T, db *gorm.DB, userID uint, name, category string) *models.ClothingItem {
	t.Helper()
	it := &models.ClothingItem{UserID: userID, Name: name, Category: category, Tags: []string{}, ImageURL: "https://img.test/" + name}
	_, err := NewClothingRepository(db).CreateWithQuota(context.Background(), it, core.DefaultQuota)
	require.NoError(t, err)
	return it
}

func seedOutfit(t *testing.T, db *gorm.DB, userID uint, name string, itemIDs ...uint) *models.Outfit {
	t.Helper()
	o := &models.Outfit{UserID: userID, Name: name}
	require.NoError(t, NewOutfitRepository(db).Create(context.Background(), o, itemIDs))
	return o
}

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func uploadCountOf(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()
	var u models.User
	require.NoError(t, db.First(&u, userID).Error)
	return u.UploadCount
}

func memberIDs(o models.Outfit) []uint {
	ids := make([]uint, 0, len(o.Items))
	for _, it := range o.Items {
		ids = append(ids, it.ClothingItemID)
	}
	return ids
}

func email(i int) string { return fmt.Sprintf("user%d@closet.test", i) }
