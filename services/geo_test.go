package services

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 6.261449, Lng: 80.906462}, {Lat: 6.2800, Lng: 80.9200}},
		{{Lat: 0, Lng: 0}, {Lat: 10, Lng: 10}},
		{{Lat: -45.5, Lng: 170.2}, {Lat: 51.5, Lng: -0.12}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		if ab != ba {
			t.Errorf("distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceZeroIdentity(t *testing.T) {
	pts := []Coordinate{
		{Lat: 6.261449, Lng: 80.906462},
		{Lat: 0, Lng: 0},
		{Lat: -90, Lng: 180},
	}
	for _, p := range pts {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("distance(a,a) = %v, want 0", d)
		}
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// one degree of latitude is ~111.19 km on a 6371 km sphere
	a := Coordinate{Lat: 6, Lng: 80}
	b := Coordinate{Lat: 7, Lng: 80}
	d := DistanceKm(a, b)
	want := 6371 * math.Pi / 180
	if math.Abs(d-want) > 0.01 {
		t.Errorf("distance = %v, want ~%v", d, want)
	}
}

func TestCoordinateValid(t *testing.T) {
	cases := []struct {
		c  Coordinate
		ok bool
	}{
		{Coordinate{Lat: 6.26, Lng: 80.9}, true},
		{Coordinate{Lat: 90, Lng: 180}, true},
		{Coordinate{Lat: -90, Lng: -180}, true},
		{Coordinate{Lat: 90.1, Lng: 0}, false},
		{Coordinate{Lat: 0, Lng: -180.5}, false},
	}
	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.ok {
			t.Errorf("Valid(%+v) = %v, want %v", tc.c, got, tc.ok)
		}
	}
}
