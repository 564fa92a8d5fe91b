package profiles

import "time"

// Coords is a latitude/longitude pair picked on the resources page.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Profile is the account row shown across the app.
type Profile struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Location       string    `json:"location,omitempty"`
	LocationCoords *Coords   `json:"locationCoords,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
