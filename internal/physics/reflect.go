package physics

import "math"

const (
	// Roughness rotates every reflected velocity by this many radians per unit of incoming speed
	Roughness = 0.01

	// MaxPaddleAngle bounds the paddle rebound angle measured from straight up
	MaxPaddleAngle = 75 * math.Pi / 180

	// SpinInfluence is the weight of accumulated angular velocity in the paddle rebound angle
	SpinInfluence = 0.1
)

// Mirror reflects v about the unit normal n: v - 2(v·n)n
func Mirror(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Reflect mirrors v about n, scales it by restitution, then rotates the
// result by Roughness*|v| so flat-wall bounces never repeat exactly.
// The rotation keeps the magnitude at restitution*|v|.
func Reflect(v, n Vec2, restitution float64) Vec2 {
	r := Mirror(v, n).Scale(restitution)
	return FromAngle(r.Angle()+Roughness*v.Len(), r.Len())
}

// Torque returns the angular velocity a body of the given footprint picks up
// when velocity acts at contact relative to its center of mass.
// Mass is approximated as (width+height)/2 and radius as width/2.
func Torque(velocity, contact, centerOfMass Vec2, width, height float64) float64 {
	mass := (width + height) / 2
	radius := width / 2
	inertia := 0.5 * mass * radius * radius
	if inertia == 0 {
		return 0
	}
	return contact.Sub(centerOfMass).Cross(velocity) / inertia
}

// ReflectionAngle maps a horizontal hit offset from the paddle center onto
// [-MaxPaddleAngle, MaxPaddleAngle] and biases it by the ball's spin.
// Zero means straight up; positive angles lean right.
func ReflectionAngle(offset, halfWidth, angularVelocity float64) float64 {
	rel := 0.0
	if halfWidth > 0 {
		rel = offset / halfWidth
	}
	if rel < -1 {
		rel = -1
	}
	if rel > 1 {
		rel = 1
	}
	return rel*MaxPaddleAngle + SpinInfluence*angularVelocity
}
