package Models

// Location is a named geographic point belonging to exactly one organisation.
type Location struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	LocationName   string  `json:"location_name"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	OrganisationID uint    `json:"organisation_id"`
}

// LocationResponse is the projection returned when listing an organisation's
// locations. The stored coordinate fields are renamed on the way out.
type LocationResponse struct {
	LocationName      string  `json:"location_name"`
	LocationLongitude float64 `json:"location_longitude"`
	LocationLatitude  float64 `json:"location_latitude"`
}

// ToResponse maps a stored location to its list view.
func (l Location) ToResponse() LocationResponse {
	return LocationResponse{
		LocationName:      l.LocationName,
		LocationLongitude: l.Longitude,
		LocationLatitude:  l.Latitude,
	}
}
