package model

import (
	"time"
)

// InventoryItem is keyed by ItemName: creating an item that already exists
// adds to its quantity.
type InventoryItem struct {
	ID            string     `json:"_id,omitempty" bson:"_id,omitempty"`
	ItemName      string     `json:"item_name" bson:"item_name"`
	Quantity      int        `json:"quantity" bson:"quantity"`
	PurchasedDate *Timestamp `json:"purchasedDate,omitempty" bson:"purchasedDate,omitempty"`
	UploadedTime  time.Time  `json:"uploaded_time" bson:"uploaded_time"`
}

type InventoryInput struct {
	ItemName      string     `json:"item_name" validate:"required"`
	Quantity      *int       `json:"quantity"`
	PurchasedDate *Timestamp `json:"purchasedDate"`
}

type InventoryUpdate struct {
	ItemName      *string    `json:"item_name,omitempty" bson:"item_name,omitempty" validate:"omitnil,min=1"`
	Quantity      *int       `json:"quantity,omitempty" bson:"quantity,omitempty"`
	PurchasedDate *Timestamp `json:"purchasedDate,omitempty" bson:"purchasedDate,omitempty"`
}

func (u *InventoryUpdate) IsEmpty() bool {
	return u.ItemName == nil && u.Quantity == nil && u.PurchasedDate == nil
}
