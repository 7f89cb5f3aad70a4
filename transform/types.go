// Package transform defines the rigid-body pose carried by every edge in
// an envgraph graph: a timestamp, a translation, a rotation and a 6x6
// covariance matrix, plus the Compose/Inverse algebra graph.Graph relies
// on to answer transitive transform queries.
//
// Covariance propagation follows a first-order additive rule (see
// Compose); anything finer-grained belongs to an estimation layer, not
// to the graph's edge payload.
package transform

import "time"

// Vector3 is a plain 3-vector; used for translation.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Quaternion is a unit quaternion (w,x,y,z) representing a rotation.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion is the rotation no-op.
var IdentityQuaternion = Quaternion{W: 1}

// Multiply returns q*o (apply o first, then q), the standard Hamilton
// product used to compose two rotations.
func (q Quaternion) Multiply(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// RotateVector rotates v by q (q must be a unit quaternion).
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	p := Quaternion{W: 0, X: v.X, Y: v.Y, Z: v.Z}
	r := q.Multiply(p).Multiply(q.Conjugate())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// Covariance6 is the 6x6 covariance of a [translation; rotation] pose
// estimate, stored row-major.
type Covariance6 [6][6]float64

// Add returns the element-wise sum, the first-order propagation rule
// used by Compose (see package doc).
func (c Covariance6) Add(o Covariance6) Covariance6 {
	var out Covariance6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out[i][j] = c[i][j] + o[i][j]
		}
	}
	return out
}

// Pose is a rigid-body transform: translation + rotation + covariance.
type Pose struct {
	Translation Vector3
	Rotation    Quaternion
	Covariance  Covariance6
	// Valid marks the pose as numerically meaningful. Compose and
	// Inverse never clear it themselves; they carry an input's false
	// flag through to their result.
	Valid bool
}

// IdentityPose is the zero transform.
var IdentityPose = Pose{Rotation: IdentityQuaternion, Valid: true}

// Transform is the edge payload: a timestamped Pose.
//
// Two Transforms are "paired" when both directions exist between the
// same two frames and the second is the Inverse of the first; graph.Graph
// guarantees this pairing on every mutation.
type Transform struct {
	Time time.Time
	Pose Pose
}

// Identity returns the zero-translation, zero-rotation transform stamped
// at t.
func Identity(t time.Time) Transform {
	return Transform{Time: t, Pose: IdentityPose}
}

// Inverse returns the transform that undoes tr: translation negated and
// rotated by the inverse rotation, rotation conjugated. Timestamp is
// carried over unchanged.
func (tr Transform) Inverse() Transform {
	invRot := tr.Pose.Rotation.Conjugate()
	return Transform{
		Time: tr.Time,
		Pose: Pose{
			Translation: invRot.RotateVector(tr.Pose.Translation.Negate()),
			Rotation:    invRot,
			Covariance:  tr.Pose.Covariance,
			Valid:       tr.Pose.Valid,
		},
	}
}

// Compose returns tr followed by other: result = tr ∘ other, i.e. a
// point expressed in "other"'s frame is first moved into tr's frame, then
// into the composed result's frame.
//
// Timestamp takes the max of the two inputs. Covariance propagates via
// the additive first-order rule (Covariance6.Add). The result is
// invalid iff either input is invalid.
func (tr Transform) Compose(other Transform) Transform {
	t := tr.Time
	if other.Time.After(t) {
		t = other.Time
	}
	return Transform{
		Time: t,
		Pose: Pose{
			Translation: tr.Pose.Translation.Add(tr.Pose.Rotation.RotateVector(other.Pose.Translation)),
			Rotation:    tr.Pose.Rotation.Multiply(other.Pose.Rotation),
			Covariance:  tr.Pose.Covariance.Add(other.Pose.Covariance),
			Valid:       tr.Pose.Valid && other.Pose.Valid,
		},
	}
}
