package models

// Station is a catalog entry that can be queried for a board
type Station struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Label returns the name, falling back to the id for uncatalogued stations
func (s Station) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
