package transform_test

import (
	"fmt"
	"time"

	"github.com/oxideframe/envgraph/transform"
)

// ExampleTransform_Compose chains two translations and prints the
// composed result alongside its inverse.
func ExampleTransform_Compose() {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ab := transform.Transform{Time: ts, Pose: transform.Pose{
		Translation: transform.Vector3{X: 1},
		Rotation:    transform.IdentityQuaternion,
		Valid:       true,
	}}
	bc := transform.Transform{Time: ts, Pose: transform.Pose{
		Translation: transform.Vector3{Y: 2},
		Rotation:    transform.IdentityQuaternion,
		Valid:       true,
	}}

	ac := ab.Compose(bc)
	ca := ac.Inverse()

	fmt.Printf("a→c: (%.0f, %.0f, %.0f)\n", ac.Pose.Translation.X, ac.Pose.Translation.Y, ac.Pose.Translation.Z)
	fmt.Printf("c→a: (%.0f, %.0f, %.0f)\n", ca.Pose.Translation.X, ca.Pose.Translation.Y, ca.Pose.Translation.Z)
	// Output:
	// a→c: (1, 2, 0)
	// c→a: (-1, -2, 0)
}
