package frametf

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// TransformStaticFrame rotates a position, velocity, or acceleration vector
// between the tag's frame pair. Only a rotation is applied, never a
// translation.
func TransformStaticFrame(v r3.Vector, tf StaticTF) r3.Vector {
	return TransformFrame(v, tf.Quat())
}

// TransformFrame rotates v by an arbitrary unit quaternion, for rotations
// computed per sample rather than one of the fixed conventions.
func TransformFrame(v r3.Vector, q quat.Number) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
