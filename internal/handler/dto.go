package handler

type RemixRequest struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

type ItemResponse struct {
	Text      string `json:"text"`
	Order     int    `json:"order"`
	Length    int    `json:"length"`
	OverLimit bool   `json:"over_limit"`
}

type RemixResponse struct {
	Kind   string         `json:"kind"`
	Output string         `json:"output"`
	Items  []ItemResponse `json:"items"`
	Model  string         `json:"model"`
}

type SaveRequest struct {
	Content string `json:"content" binding:"required"`
}

type SavedItemResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
