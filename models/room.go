package models

import "time"

// RoomImage is a catalog photo reference for a boardroom.
type RoomImage struct {
	URL     string `bson:"url" json:"url"`
	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Primary bool   `bson:"primary,omitempty" json:"primary,omitempty"`
}

// Room represents a bookable boardroom. Capacity and the active flag are
// advisory for clients; only the active flag gates new bookings.
type Room struct {
	ID        string      `bson:"id" json:"id"`
	Name      string      `bson:"name" json:"name"`
	Location  string      `bson:"location" json:"location"`
	Capacity  int         `bson:"capacity" json:"capacity"`
	Amenities []string    `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Active    bool        `bson:"active" json:"active"`
	Images    []RoomImage `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updatedAt"`
}
