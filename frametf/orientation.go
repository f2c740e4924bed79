package frametf

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// TransformOrientation relabels the frame an orientation quaternion is
// expressed in. World-frame relabels (NED/ENU) premultiply by the static
// rotation: the relabel rotates the reference frame, which happens before the
// object's own orientation. Body-frame relabels (aircraft/base_link)
// postmultiply: the relabel rotates the body axes, after the orientation.
// The input is assumed unit norm and is not renormalized.
func TransformOrientation(q quat.Number, tf StaticTF) quat.Number {
	switch tf {
	case NEDToENU, ENUToNED:
		return quat.Mul(nedEnuQ, q)
	case AircraftToBaselink, BaselinkToAircraft:
		return quat.Mul(q, aircraftBaselinkQ)
	}
	panic(fmt.Sprintf("unknown StaticTF %d", uint8(tf)))
}
