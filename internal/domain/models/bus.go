package models

// Bus is a scheduled route with a fixed seat capacity. Buses are immutable
// once created; there is no edit or delete operation.
type Bus struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Capacity    int    `json:"capacity"`
}
