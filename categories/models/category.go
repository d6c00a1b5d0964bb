package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
)

// Category is a content vertical creators tag themselves with
type Category struct {
	ObjectId      uuid.UUID  `json:"objectId" db:"id"`
	Name          string     `json:"name" db:"name"`
	Slug          string     `json:"slug" db:"slug"`
	Subcategories StringList `json:"subcategories" db:"subcategories"`
	SortOrder     int        `json:"sortOrder" db:"sort_order"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// CreateCategoryRequest is the admin payload for adding a category
type CreateCategoryRequest struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Subcategories []string `json:"subcategories"`
	SortOrder     int      `json:"sortOrder"`
}

// StringList round-trips a jsonb array column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
