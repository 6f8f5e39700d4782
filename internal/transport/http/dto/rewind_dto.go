package dto

type RewindRequest struct {
	UserID    string `json:"user_id"`
	IsPremium bool   `json:"is_premium"`
}

type RewindResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Profile *ProfileCardResponse `json:"profile,omitempty"`
}

type ProfileCardResponse struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Age         int    `json:"age"`
	CityID      string `json:"city_id"`
	City        string `json:"city"`
	Bio         string `json:"bio"`
}
