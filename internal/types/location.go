package types

// UnknownLocationName is shown when a place name cannot be resolved
const UnknownLocationName = "Unknown location"

// Location is a resolved place the dashboard can fetch weather for.
// A new lookup produces a new Location; existing values are never mutated.
type Location struct {
	Coordinates Coords `json:"coordinates"`
	DisplayName string `json:"displayName"`
}

func NewLocation(latitude, longitude float64, displayName string) Location {
	return Location{
		Coordinates: NewCoords(latitude, longitude),
		DisplayName: displayName,
	}
}

// Place is a geocoding candidate ranked by the provider
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Label returns "<name>, <country>", or just the name when the country is unknown
func (p Place) Label() string {
	if p.Country == "" {
		return p.Name
	}
	return p.Name + ", " + p.Country
}

// Location converts the candidate into a Location named by its label
func (p Place) Location() Location {
	return NewLocation(p.Latitude, p.Longitude, p.Label())
}
