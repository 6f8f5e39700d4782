package dto

type SwipeRequest struct {
	UserID   string `json:"user_id"`
	TargetID int64  `json:"target_id"`
	Kind     string `json:"kind"`
}

type SwipeResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	MatchCreated bool   `json:"match_created"`
}
