package models

// RoomStatus is the admin decision recorded on a booking.
type RoomStatus string

const (
	RoomStatusUnset    RoomStatus = ""
	RoomStatusApproved RoomStatus = "Approved"
	RoomStatusDecline  RoomStatus = "Decline"
)

// Valid reports whether s can be set through an explicit status action.
func (s RoomStatus) Valid() bool {
	return s == RoomStatusApproved || s == RoomStatusDecline
}

// Field names of a booking document in the payments collection.
const (
	FieldCheckInDate  = "checkInDate"
	FieldCheckOutDate = "checkOutDate"
	FieldTotalPrice   = "totalPrice"
	FieldRoomStatus   = "roomStatus"
)

// RoomSnapshot is the copy of the booked room taken at payment time.
type RoomSnapshot struct {
	Name  string `mapstructure:"name" json:"name"`
	Type  string `mapstructure:"type" json:"type"`
	Price string `mapstructure:"price" json:"price"` // numeric-as-string
}

// BookingRecord is one guest payment/stay entry.
type BookingRecord struct {
	ID           string       `mapstructure:"-" json:"id"`
	Email        string       `mapstructure:"email" json:"email"`
	CardName     string       `mapstructure:"cardName" json:"cardName"`
	CardNumber   string       `mapstructure:"cardNumber" json:"cardNumber"`
	CVV          string       `mapstructure:"cvv" json:"cvv"`
	ExpiryDate   string       `mapstructure:"expiryDate" json:"expiryDate"`
	Room         RoomSnapshot `mapstructure:"room" json:"room"`
	CheckInDate  string       `mapstructure:"checkInDate" json:"checkInDate"`
	CheckOutDate string       `mapstructure:"checkOutDate" json:"checkOutDate"`
	TotalPrice   float64      `mapstructure:"totalPrice" json:"totalPrice"`
	RoomStatus   RoomStatus   `mapstructure:"roomStatus" json:"roomStatus"`
}
