// Package frametf converts orientations, vectors, and covariance matrices
// between the frame conventions used on either side of the bridge: the
// NED/ENU world-frame pair and the aircraft/base_link body-frame pair, plus
// rotation of the same quantities by an arbitrary quaternion.
package frametf

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// StaticTF selects one of the four fixed frame conversions.
type StaticTF uint8

// The four static conversions. NED (North-East-Down) and ENU (East-North-Up)
// relabel world-frame quantities; aircraft (Forward-Right-Down) and base_link
// (Forward-Left-Up) relabel body-frame quantities.
const (
	NEDToENU StaticTF = iota
	ENUToNED
	AircraftToBaselink
	BaselinkToAircraft
)

// Static rotations backing the conversions.
// nedEnuQ is a pi rotation about X followed by a pi/2 rotation about Z; the
// composition order matters, reversing it gives a different quaternion.
// aircraftBaselinkQ is a pi rotation about X alone. Each pair shares a single
// rotation because it is self-inverse, which is why both directions of a pair
// map to the same quaternion. Initialized before first use and never written
// again, so concurrent reads need no locking.
var (
	nedEnuQ           = QuatFromRPY(math.Pi, 0, math.Pi/2)
	aircraftBaselinkQ = QuatFromRPY(math.Pi, 0, 0)

	nedEnuR           = RotationMatrixFromQuat(nedEnuQ)
	aircraftBaselinkR = RotationMatrixFromQuat(aircraftBaselinkQ)
)

func (tf StaticTF) String() string {
	switch tf {
	case NEDToENU:
		return "NED_TO_ENU"
	case ENUToNED:
		return "ENU_TO_NED"
	case AircraftToBaselink:
		return "AIRCRAFT_TO_BASELINK"
	case BaselinkToAircraft:
		return "BASELINK_TO_AIRCRAFT"
	}
	panic(fmt.Sprintf("unknown StaticTF %d", uint8(tf)))
}

// ParseStaticTF maps a conversion name, as spelled in bridge configuration,
// back to its tag.
func ParseStaticTF(s string) (StaticTF, error) {
	for _, tf := range []StaticTF{NEDToENU, ENUToNED, AircraftToBaselink, BaselinkToAircraft} {
		if s == tf.String() {
			return tf, nil
		}
	}
	return 0, errors.Errorf("unknown static transform %q", s)
}

// Quat returns the unit quaternion of the conversion's rotation.
func (tf StaticTF) Quat() quat.Number {
	switch tf {
	case NEDToENU, ENUToNED:
		return nedEnuQ
	case AircraftToBaselink, BaselinkToAircraft:
		return aircraftBaselinkQ
	}
	panic(fmt.Sprintf("unknown StaticTF %d", uint8(tf)))
}

// rotation returns the 3x3 rotation matrix of the conversion's rotation.
// The matrix is shared; callers must not modify it.
func (tf StaticTF) rotation() *mat.Dense {
	switch tf {
	case NEDToENU, ENUToNED:
		return nedEnuR
	case AircraftToBaselink, BaselinkToAircraft:
		return aircraftBaselinkR
	}
	panic(fmt.Sprintf("unknown StaticTF %d", uint8(tf)))
}
