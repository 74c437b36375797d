package geometry

import (
	"math"
)

// Polar returns the polar coordinates of the offset (dx, dy): the radius and
// the angle normalized to [0, 2π). Screen convention: y grows downward, so
// angles sweep clockwise when viewed on screen.
func Polar(dx, dy float64) (radius, angle float64) {
	radius = math.Sqrt(dx*dx + dy*dy)
	angle = NormalizeAngle(math.Atan2(dy, dx))
	return radius, angle
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta+2*math.Pi, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// RayPoint returns the integer pixel reached from (cx, cy) along angle theta
// at the given radius. The summed coordinate is truncated toward zero, which
// is the sampling rule the radial extrapolator depends on.
func RayPoint(cx, cy int, theta, radius float64) PointInt {
	return PointInt{
		X: int(float64(cx) + math.Cos(theta)*radius),
		Y: int(float64(cy) + math.Sin(theta)*radius),
	}
}
