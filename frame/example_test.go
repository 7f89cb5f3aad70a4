package frame_test

import (
	"fmt"
	"time"

	"github.com/oxideframe/envgraph/frame"
	"github.com/oxideframe/envgraph/item"
)

// ExampleFrame shows a frame claiming ownership of the items added to
// its store.
func ExampleFrame() {
	f := frame.New("camera_left")
	it := item.NewBase("exposure", "Exposure", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), 125)
	f.Items().Add(it)

	fmt.Println("frame:", f.FrameID())
	fmt.Println("item owned by:", it.Frame())
	fmt.Println("items stored:", f.Items().Count())
	// Output:
	// frame: camera_left
	// item owned by: camera_left
	// items stored: 1
}
