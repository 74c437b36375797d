// Package geometry provides basic geometric types used throughout the application.
package geometry

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}
