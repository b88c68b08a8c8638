// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pressfeed/pressfeed/model"
)

const (
	TestDBPrefix         = "testonlydb_"
	TestDBNameCharLength = 8
)

// GetDBConnection get a connection to the database specified by env
func GetDBConnection() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	return getDB(postgres.Open(dsn))
}

// CreateTempDB creates a throwaway database for one test case, migrated to
// the current schema. It lives in the test's temp directory and is removed
// with it, so no manual cleanup is needed. The embedded engine keeps tests
// runnable without a database server.
func CreateTempDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	dbName := TestDBPrefix + RandomAlphabetString(TestDBNameCharLength)
	path := filepath.Join(t.TempDir(), dbName+".db")
	db, err := getDB(sqlite.Open(path))
	if err != nil {
		t.Fatalf("fail to create temp DB %s: %v", dbName, err)
	}
	DatabaseSetupAndMigration(db)

	t.Cleanup(func() {
		// Proactively close the connection instead of deferring to GC,
		// otherwise a long test run can exhaust open file handles.
		conn, _ := db.DB()
		conn.Close()
	})

	return db, dbName
}

func getDB(dialector gorm.Dialector) (db *gorm.DB, err error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func DatabaseSetupAndMigration(db *gorm.DB) {
	err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	)
	if err != nil {
		panic("failed to migrate database")
	}
}
