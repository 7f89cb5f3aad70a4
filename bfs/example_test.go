package bfs_test

import (
	"fmt"

	"github.com/oxideframe/envgraph/bfs"
)

// ExampleWalk_pathTo finds the fewest-hop frame chain between two
// sensors through a shared base link.
func ExampleWalk_pathTo() {
	g := adjGraph{
		"odom":         {"base_link"},
		"base_link":    {"odom", "camera_left", "camera_right"},
		"camera_left":  {"base_link"},
		"camera_right": {"base_link"},
	}

	res, err := bfs.Walk(g, "odom")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := res.PathTo("camera_right")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [odom base_link camera_right]
}

// ExampleWalk_maxDepth stops the frontier one hop out.
func ExampleWalk_maxDepth() {
	g := adjGraph{
		"a": {"b"},
		"b": {"a", "c"},
		"c": {"b"},
	}

	res, _ := bfs.Walk(g, "a", bfs.WithMaxDepth(1))
	fmt.Println(res.Order)
	// Output:
	// [a b]
}
