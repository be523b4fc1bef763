package domain

import "time"

// Project is a named, persisted ConOps document. The numeric ID is
// assigned by the store on first save.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Doc       Document  `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}
