package dto

type GroupMessageRequest struct {
	Sender string `json:"sender" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type GroupMessageResponse struct {
	Accepted bool `json:"accepted"`
}

type VoteResultsResponse struct {
	Status         string            `json:"status"`
	GroupID        string            `json:"group_id"`
	Results        map[string]int    `json:"results"`
	WinningOptions map[string]string `json:"winning_options"`
}
