package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the notes schema.
// Max open conns is pinned to 1 so every query sees the same in-memory
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Memo{}, &domain.Article{}, &domain.ArticleChapter{}))
	return db
}

// touch backdates or forwards a row's updated_at so ordering tests do
// not depend on sub-millisecond clock resolution.
func touch(t *testing.T, db *gorm.DB, model interface{}, id string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(model).Where("id = ?", id).Update("updated_at", at).Error)
}
