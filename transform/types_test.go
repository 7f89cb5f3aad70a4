package transform_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxideframe/envgraph/transform"
)

func TestTransform_ComposeTranslation(t *testing.T) {
	// Pure translations along orthogonal axes compose additively.
	now := time.Now()
	ab := transform.Transform{Time: now, Pose: transform.Pose{
		Translation: transform.Vector3{X: 1},
		Rotation:    transform.IdentityQuaternion,
		Valid:       true,
	}}
	bc := transform.Transform{Time: now, Pose: transform.Pose{
		Translation: transform.Vector3{Y: 1},
		Rotation:    transform.IdentityQuaternion,
		Valid:       true,
	}}

	ac := ab.Compose(bc)
	assert.InDelta(t, 1, ac.Pose.Translation.X, 1e-9)
	assert.InDelta(t, 1, ac.Pose.Translation.Y, 1e-9)
	assert.True(t, ac.Pose.Valid)

	ca := ac.Inverse()
	assert.InDelta(t, -1, ca.Pose.Translation.X, 1e-9)
	assert.InDelta(t, -1, ca.Pose.Translation.Y, 1e-9)
}

func TestTransform_InverseRoundTrip(t *testing.T) {
	// Invariant 1: compose(P, P.inverse()) is within tolerance of identity.
	now := time.Now()
	tr := transform.Transform{Time: now, Pose: transform.Pose{
		Translation: transform.Vector3{X: 3, Y: -2, Z: 5},
		Rotation:    transform.Quaternion{W: 0.7071067811865476, X: 0, Y: 0, Z: 0.7071067811865476},
		Valid:       true,
	}}

	identity := tr.Compose(tr.Inverse())
	assert.InDelta(t, 0, identity.Pose.Translation.X, 1e-9)
	assert.InDelta(t, 0, identity.Pose.Translation.Y, 1e-9)
	assert.InDelta(t, 0, identity.Pose.Translation.Z, 1e-9)
	assert.InDelta(t, 1, identity.Pose.Rotation.W, 1e-9)
	require.True(t, identity.Pose.Valid)
}

func TestTransform_ComposeInvalidPropagates(t *testing.T) {
	now := time.Now()
	valid := transform.Identity(now)
	invalid := transform.Transform{Time: now, Pose: transform.Pose{Rotation: transform.IdentityQuaternion, Valid: false}}

	assert.False(t, valid.Compose(invalid).Pose.Valid)
	assert.False(t, invalid.Compose(valid).Pose.Valid)
}

func TestTransform_ComposeTimestampTakesMax(t *testing.T) {
	earlier := time.Now()
	later := earlier.Add(time.Minute)
	a := transform.Identity(earlier)
	b := transform.Identity(later)

	assert.Equal(t, later, a.Compose(b).Time)
	assert.Equal(t, later, b.Compose(a).Time)
}
