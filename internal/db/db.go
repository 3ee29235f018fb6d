package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates a single record. A unique constraint violation is
// reported as ErrDuplicate so callers can tell a conflict from an outage.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entities any) error {
	tx := f.DB.WithContext(ctx).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// UpdateOneBy applies the given column updates to every row matching
// column = value and returns the number of rows affected. Zero rows means
// no match existed; callers decide whether that is an error.
func (f *PostgresDB) UpdateOneBy(ctx context.Context, model any, column string, value any, updates map[string]any) (int64, error) {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Model(model).Where(query, value).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating record by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}
