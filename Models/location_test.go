package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationToResponse(t *testing.T) {
	location := Location{
		ID:             7,
		LocationName:   "Warehouse",
		Longitude:      12.5,
		Latitude:       -3.25,
		OrganisationID: 2,
	}

	response := location.ToResponse()
	assert.Equal(t, "Warehouse", response.LocationName)
	assert.Equal(t, 12.5, response.LocationLongitude)
	assert.Equal(t, -3.25, response.LocationLatitude)
}
