package dto

type UserMessageRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type UserMessageResponse struct {
	Response string `json:"response"`
}
