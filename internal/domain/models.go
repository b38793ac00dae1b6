// Package domain defines the persistence models for clothing items and
// saved outfits. These types are mapped with GORM and form the core data
// layer of the wardrobe application.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ClothingItem represents a single uploaded garment. The image payload is
// stored verbatim as the base64 text received at upload time, and the four
// descriptive fields are filled in by the AI analyzer (or its fallback
// record when analysis cannot be completed).
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned at creation.
//   - ImageBase64: base64-encoded image payload; immutable once stored.
//   - Category / Color / Style / Description: AI-derived classification.
//   - CreatedAt: UTC creation instant, set once.
//
// Items are never updated in place; they are removed by hard delete.
type ClothingItem struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	ImageBase64 string    `json:"image_base64" gorm:"type:text;not null"`
	Category    string    `json:"category"     gorm:"type:varchar(64);not null"`
	Color       string    `json:"color"        gorm:"type:varchar(64);not null"`
	Style       string    `json:"style"        gorm:"type:varchar(64);not null"`
	Description string    `json:"description"  gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for ClothingItem.
func (ClothingItem) TableName() string { return "clothing_items" }

// SavedOutfit is an outfit suggestion the user chose to keep. It references
// clothing items by id without foreign-key integrity: a saved outfit may
// point at items that have since been deleted, and the id list preserves
// order and duplicates exactly as supplied by the caller.
//
// Fields:
//   - ID: UUID primary key (char(36)), assigned at creation.
//   - Name / Occasion: free text supplied by the user.
//   - ClothingIDs: ordered list of referenced item ids (JSON text column).
//   - AISuggestion: the AI-generated suggestion text, stored verbatim.
//   - CreatedAt: UTC creation instant.
//
// Outfits are never updated in place; they are removed by hard delete.
type SavedOutfit struct {
	ID           string     `json:"id"            gorm:"type:char(36);primaryKey"`
	Name         string     `json:"name"          gorm:"type:varchar(255);not null"`
	Occasion     string     `json:"occasion"      gorm:"type:varchar(255);not null"`
	ClothingIDs  StringList `json:"clothing_ids"  gorm:"type:text;not null"`
	AISuggestion string     `json:"ai_suggestion" gorm:"type:text;not null"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TableName returns the database table name for SavedOutfit.
func (SavedOutfit) TableName() string { return "saved_outfits" }

// StringList is an ordered list of strings persisted as a JSON array in a
// TEXT column. Order and duplicates survive the round trip; there is no
// deduplication and no referential check against other tables.
type StringList []string

// Value serializes the list for storage. A nil list is stored as "[]" so
// the column never holds SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores the list from its stored JSON form. NULL scans as an empty
// list rather than nil to keep JSON responses rendering "[]".
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode clothing id list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
