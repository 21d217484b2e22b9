// models/item.go
package models

import "time"

const ItemTable = "lab_items"

// Item is one kind of equipment with a shared, depletable quantity.
// Quantity is only ever changed by the accounting repo (collect/return)
// or by an admin edit; the CHECK constraint keeps it non-negative even
// if a raw update slips through.
type Item struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"size:200;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Purpose     string `gorm:"size:255" json:"purpose"`
	Website     string `gorm:"size:255" json:"website,omitempty"`
	// Opaque reference owned by the upload collaborator; we only store it.
	Image    string `gorm:"size:255" json:"image,omitempty"`
	Quantity int    `gorm:"not null;check:quantity >= 0" json:"quantity"`

	CreatedBy string    `gorm:"size:255" json:"createdBy,omitempty"`
	UpdatedBy string    `gorm:"size:255" json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return ItemTable }
