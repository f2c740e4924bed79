package frametf

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// QuatFromRPY builds a unit quaternion from intrinsic ZYX Tait-Bryan angles
// in radians: yaw about Z, then pitch about Y, then roll about X.
func QuatFromRPY(roll, pitch, yaw float64) quat.Number {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	return quat.Number{
		Real: cy*cp*cr + sy*sp*sr,
		Imag: cy*cp*sr - sy*sp*cr,
		Jmag: cy*sp*cr + sy*cp*sr,
		Kmag: sy*cp*cr - cy*sp*sr,
	}
}

// RPYFromQuat is the inverse of QuatFromRPY. The asin argument is clamped so
// that quaternions a hair past a pole still decompose.
func RPYFromQuat(q quat.Number) (roll, pitch, yaw float64) {
	roll = math.Atan2(2*(q.Real*q.Imag+q.Jmag*q.Kmag), 1-2*(q.Imag*q.Imag+q.Jmag*q.Jmag))
	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}
	yaw = QuatYaw(q)
	return roll, pitch, yaw
}

// QuatYaw extracts the heading (rotation about Z) of a quaternion without a
// full Euler decomposition.
func QuatYaw(q quat.Number) float64 {
	return math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
}

// RotationMatrixFromQuat converts a quaternion to its 3x3 rotation matrix.
// The quaternion is normalized first, so a near-unit input still yields an
// orthonormal matrix.
func RotationMatrixFromQuat(q quat.Number) *mat.Dense {
	if n := quat.Abs(q); n != 1 {
		q = quat.Scale(1/n, q)
	}
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}
