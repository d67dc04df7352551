package model

import (
	"time"
)

// Booking is a room reservation. No field is mandatory; num_of_nights is
// whatever the client sent on create and is recomputed on update when both
// stay dates are supplied.
type Booking struct {
	ID            string     `json:"_id,omitempty" bson:"_id,omitempty"`
	RoomNumber    string     `json:"roomNumber,omitempty" bson:"roomNumber,omitempty"`
	RoomType      string     `json:"roomType,omitempty" bson:"roomType,omitempty"`
	Package       string     `json:"package,omitempty" bson:"package,omitempty"`
	ExtraDetails  string     `json:"extraDetails,omitempty" bson:"extraDetails,omitempty"`
	CheckIn       *Timestamp `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut      *Timestamp `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
	NumOfNights   *int       `json:"num_of_nights,omitempty" bson:"num_of_nights,omitempty"`
	Total         string     `json:"total,omitempty" bson:"total,omitempty"`
	Advance       string     `json:"advance,omitempty" bson:"advance,omitempty"`
	BalanceMethod string     `json:"balanceMethod,omitempty" bson:"balanceMethod,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
}

type BookingUpdate struct {
	RoomNumber    *string    `json:"roomNumber,omitempty" bson:"roomNumber,omitempty"`
	RoomType      *string    `json:"roomType,omitempty" bson:"roomType,omitempty"`
	Package       *string    `json:"package,omitempty" bson:"package,omitempty"`
	ExtraDetails  *string    `json:"extraDetails,omitempty" bson:"extraDetails,omitempty"`
	CheckIn       *Timestamp `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut      *Timestamp `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
	NumOfNights   *int       `json:"num_of_nights,omitempty" bson:"num_of_nights,omitempty"`
	Total         *string    `json:"total,omitempty" bson:"total,omitempty"`
	Advance       *string    `json:"advance,omitempty" bson:"advance,omitempty"`
	BalanceMethod *string    `json:"balanceMethod,omitempty" bson:"balanceMethod,omitempty"`
}

func (u *BookingUpdate) IsEmpty() bool {
	return u.RoomNumber == nil && u.RoomType == nil && u.Package == nil &&
		u.ExtraDetails == nil && u.CheckIn == nil && u.CheckOut == nil &&
		u.NumOfNights == nil && u.Total == nil && u.Advance == nil &&
		u.BalanceMethod == nil
}
