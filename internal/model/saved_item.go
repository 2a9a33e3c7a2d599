package model

import "time"

type SavedItem struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}
