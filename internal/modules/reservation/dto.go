package reservation

// Dates travel as "2006-01-02" strings; the service parses and
// normalizes them.
type CreateBookingRequest struct {
	GuestDocument string `json:"guest_document" binding:"required"`
	RoomNumber    int    `json:"room_number" binding:"required,gt=0"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	PartySize     int    `json:"party_size" binding:"required,gt=0"`
}

// CommandRequest addresses a booking by its (guest document, room
// number) pair; the first registered match is taken.
type CommandRequest struct {
	GuestDocument string `json:"guest_document" binding:"required"`
	RoomNumber    int    `json:"room_number" binding:"required,gt=0"`
}

type NoShowRequest struct {
	GuestDocument string `json:"guest_document" binding:"required"`
	RoomNumber    int    `json:"room_number" binding:"required,gt=0"`
	Force         bool   `json:"force"`
}

type PaymentRequest struct {
	GuestDocument string  `json:"guest_document" binding:"required"`
	RoomNumber    int     `json:"room_number" binding:"required,gt=0"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
}

type ChargeRequest struct {
	GuestDocument string  `json:"guest_document" binding:"required"`
	RoomNumber    int     `json:"room_number" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}
