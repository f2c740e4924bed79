package frametf

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Flattened row-major covariance matrices for one, two, or three stacked 3-D
// quantities (e.g. position; position+velocity; position+velocity+acceleration
// or attitude+rates). Inputs must be symmetric positive semi-definite; this is
// a caller contract and is not checked.
type (
	// Covariance3 is a 3x3 covariance matrix.
	Covariance3 [9]float64
	// Covariance6 is a 6x6 covariance matrix.
	Covariance6 [36]float64
	// Covariance9 is a 9x9 covariance matrix.
	Covariance9 [81]float64
)

// TransformStaticFrame re-expresses the covariance in the tag's target frame.
func (c Covariance3) TransformStaticFrame(tf StaticTF) Covariance3 {
	var out Covariance3
	congruence(out[:], c[:], 3, tf.rotation())
	return out
}

// TransformFrame re-expresses the covariance under an arbitrary rotation.
func (c Covariance3) TransformFrame(q quat.Number) Covariance3 {
	var out Covariance3
	congruence(out[:], c[:], 3, RotationMatrixFromQuat(q))
	return out
}

// TransformStaticFrame re-expresses the covariance in the tag's target frame,
// rotating each 3x3 block by the same static rotation.
func (c Covariance6) TransformStaticFrame(tf StaticTF) Covariance6 {
	var out Covariance6
	congruence(out[:], c[:], 6, tf.rotation())
	return out
}

// TransformFrame re-expresses the covariance under an arbitrary rotation.
func (c Covariance6) TransformFrame(q quat.Number) Covariance6 {
	var out Covariance6
	congruence(out[:], c[:], 6, RotationMatrixFromQuat(q))
	return out
}

// TransformStaticFrame re-expresses the covariance in the tag's target frame,
// rotating each 3x3 block by the same static rotation.
func (c Covariance9) TransformStaticFrame(tf StaticTF) Covariance9 {
	var out Covariance9
	congruence(out[:], c[:], 9, tf.rotation())
	return out
}

// TransformFrame re-expresses the covariance under an arbitrary rotation.
func (c Covariance9) TransformFrame(q quat.Number) Covariance9 {
	var out Covariance9
	congruence(out[:], c[:], 9, RotationMatrixFromQuat(q))
	return out
}

// congruence computes R·C·Rᵀ over the flat row-major input, with the 3x3
// rotation replicated along the diagonal of a block matrix when the order
// exceeds 3. Off-diagonal blocks stay zero: every stacked 3-D quantity, and
// every cross-covariance block between them, rotates under the same single
// rotation. R is orthonormal, so symmetry and the eigenvalue spectrum of the
// input survive the transform.
func congruence(dst, src []float64, order int, r *mat.Dense) {
	br := blockDiag(r, order/3)
	var tmp mat.Dense
	tmp.Mul(br, mat.NewDense(order, order, src))
	out := mat.NewDense(order, order, dst)
	out.Mul(&tmp, br.T())
}

// blockDiag lays k copies of a 3x3 rotation along the diagonal of a (3k)x(3k)
// matrix, zeros elsewhere.
func blockDiag(r *mat.Dense, k int) *mat.Dense {
	if k == 1 {
		return r
	}
	b := mat.NewDense(3*k, 3*k, nil)
	for i := 0; i < k; i++ {
		b.Slice(3*i, 3*i+3, 3*i, 3*i+3).(*mat.Dense).Copy(r)
	}
	return b
}
