package catalog

type RegisterRoomRequest struct {
	Number   int     `json:"number" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Capacity int     `json:"capacity" binding:"required,gt=0"`
	BaseRate float64 `json:"base_rate" binding:"required,gt=0"`
}

type RegisterGuestRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
