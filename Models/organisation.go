package Models

// Organisation is a top-level named entity owning zero or more locations.
// Records are immutable once created.
type Organisation struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`

	Locations []Location `json:"-" gorm:"foreignKey:OrganisationID"`
}

// CreateOrganisationInput is the body accepted by the create endpoint.
// Names are not required to be unique.
type CreateOrganisationInput struct {
	Name string `json:"name"`
}
