// File: codec.go
// Role: the process-wide item codec registry, keyed by class name.
package serialize

import (
	"sync"

	"github.com/oxideframe/envgraph/item"
)

// Codec is the four-operation pair a concrete item class registers for
// the serialization boundary: binary and text twins of save/load.
type Codec interface {
	SaveBinary(it item.Item) ([]byte, error)
	LoadBinary(data []byte) (item.Item, error)
	SaveText(it item.Item) (string, error)
	LoadText(text string) (item.Item, error)
}

var (
	codecMu sync.Mutex
	codecs  = make(map[string]Codec)
)

// RegisterCodec records c under className, process-wide and append-only
// in normal operation. Re-registering
// the same class name replaces the codec, matching the plugin-reload
// scenario the out-of-scope plugin loader would trigger on a shared
// library update.
func RegisterCodec(className string, c Codec) {
	codecMu.Lock()
	defer codecMu.Unlock()
	codecs[className] = c
}

// LookupCodec returns the codec registered under className, if any. A
// deployed system would react to a miss by lazy-loading the class's
// plugin library and retrying; envgraph has no plugin loader, so a miss
// here is final for the current process.
func LookupCodec(className string) (Codec, bool) {
	codecMu.Lock()
	defer codecMu.Unlock()
	c, ok := codecs[className]
	return c, ok
}
