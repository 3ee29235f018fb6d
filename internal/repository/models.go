package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Bookmarks is the ordered list of saved item identifiers, persisted as a
// single jsonb column. Order and duplicates are kept exactly as stored.
type Bookmarks []string

func (b Bookmarks) Value() (driver.Value, error) {
	if b == nil {
		b = Bookmarks{}
	}
	return json.Marshal(b)
}

func (b *Bookmarks) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*b = Bookmarks{}
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("unsupported bookmarks column type: %T", value)
	}
}

func (Bookmarks) GormDataType() string {
	return "jsonb"
}

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Bookmarks    Bookmarks `gorm:"not null;default:'[]'"`
}
