// Package testdb поднимает временную БД sqlite со структурой таблиц сервиса для тестов
package testdb

import (
	"fmt"
	"path/filepath"
	"testing"

	"helpdesk-backend/db"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("%v?_busy_timeout=5000&_txlock=immediate", filepath.Join(t.TempDir(), "helpdesk.db"))
	DB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(DB))
	t.Cleanup(func() {
		sqlDB, err := DB.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return DB
}
