package models

import "time"

type Property struct {
	ID          int64     `bson:"id" json:"id"`
	Address     string    `bson:"address" json:"address"`
	Type        string    `bson:"type" json:"type"`
	Photos      []string  `bson:"photos" json:"photos"`
	Description string    `bson:"description" json:"description"`
	Status      string    `bson:"status" json:"status"`
	OwnerID     int64     `bson:"ownerId" json:"ownerId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
