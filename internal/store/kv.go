package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// KV is the persistent key-value space holding one encrypted blob per
// record collection. It stands in for the original host storage; slots
// are independent and each Set replaces the slot's whole value.
type KV interface {
	Get(slot string) (string, bool, error)
	Set(slot string, value string) error
}

// Slot is one named key-value entry.
type Slot struct {
	Name  string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

type SQLiteKV struct {
	database *gorm.DB
}

func OpenSQLite(dbPath string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return &SQLiteKV{database: database}, nil
}

func (kv *SQLiteKV) Get(slot string) (string, bool, error) {
	var entry Slot
	if err := kv.database.First(&entry, "name = ?", slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (kv *SQLiteKV) Set(slot string, value string) error {
	return kv.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Slot{Name: slot, Value: value}).Error
}
