package frametf

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

var allStaticTFs = []StaticTF{NEDToENU, ENUToNED, AircraftToBaselink, BaselinkToAircraft}

func TestStaticTFString(t *testing.T) {
	names := map[StaticTF]string{
		NEDToENU:           "NED_TO_ENU",
		ENUToNED:           "ENU_TO_NED",
		AircraftToBaselink: "AIRCRAFT_TO_BASELINK",
		BaselinkToAircraft: "BASELINK_TO_AIRCRAFT",
	}
	for tf, name := range names {
		test.That(t, tf.String(), test.ShouldEqual, name)
	}
}

func TestParseStaticTF(t *testing.T) {
	for _, tf := range allStaticTFs {
		parsed, err := ParseStaticTF(tf.String())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, tf)
	}

	_, err := ParseStaticTF("NED_TO_NWU")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "NED_TO_NWU")
}

func TestStaticQuats(t *testing.T) {
	// pi about X then pi/2 about Z
	halfSqrt2 := math.Sqrt2 / 2
	q := NEDToENU.Quat()
	test.That(t, q.Real, test.ShouldAlmostEqual, 0)
	test.That(t, q.Imag, test.ShouldAlmostEqual, halfSqrt2)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, halfSqrt2)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, 0)

	// pi about X only
	q = AircraftToBaselink.Quat()
	test.That(t, q.Real, test.ShouldAlmostEqual, 0)
	test.That(t, q.Imag, test.ShouldAlmostEqual, 1)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, 0)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, 0)

	// both directions of a pair share one rotation
	test.That(t, ENUToNED.Quat(), test.ShouldResemble, NEDToENU.Quat())
	test.That(t, BaselinkToAircraft.Quat(), test.ShouldResemble, AircraftToBaselink.Quat())

	// each static quaternion is unit norm
	for _, tf := range allStaticTFs {
		test.That(t, quat.Abs(tf.Quat()), test.ShouldAlmostEqual, 1)
	}
}

func TestStaticRotationsSelfInverse(t *testing.T) {
	for _, tf := range allStaticTFs {
		t.Run(tf.String(), func(t *testing.T) {
			r := tf.rotation()
			var sq mat.Dense
			sq.Mul(r, r)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					test.That(t, sq.At(i, j), test.ShouldAlmostEqual, want)
				}
			}
		})
	}
}

func TestStaticRotationMatrices(t *testing.T) {
	wantNEDENU := []float64{
		0, 1, 0,
		1, 0, 0,
		0, 0, -1,
	}
	wantAircraftBaselink := []float64{
		1, 0, 0,
		0, -1, 0,
		0, 0, -1,
	}
	for i, want := range wantNEDENU {
		test.That(t, NEDToENU.rotation().RawMatrix().Data[i], test.ShouldAlmostEqual, want)
	}
	for i, want := range wantAircraftBaselink {
		test.That(t, AircraftToBaselink.rotation().RawMatrix().Data[i], test.ShouldAlmostEqual, want)
	}
}
