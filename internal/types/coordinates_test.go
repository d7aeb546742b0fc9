package types

import (
	"math"
	"testing"
)

func TestCoords_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coords
		wantErr bool
	}{
		{name: "Berlin", coords: NewCoords(52.52, 13.41)},
		{name: "corners", coords: NewCoords(-90, 180)},
		{name: "latitude too high", coords: NewCoords(90.1, 0), wantErr: true},
		{name: "longitude too low", coords: NewCoords(0, -180.5), wantErr: true},
		{name: "NaN", coords: NewCoords(math.NaN(), math.NaN()), wantErr: true},
		{name: "NaN longitude", coords: NewCoords(10, math.NaN()), wantErr: true},
		{name: "infinite latitude", coords: NewCoords(math.Inf(1), 0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coords.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
