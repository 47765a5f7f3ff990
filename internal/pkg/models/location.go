package models

import "time"

// Location represents a geographic coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// NearbyDriver represents an available driver candidate with their last
// known location and planar distance from a pickup point.
type NearbyDriver struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
	Distance float64  `json:"distance"`
}
