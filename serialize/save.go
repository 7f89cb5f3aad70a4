// File: save.go
// Role: whole-graph save.
package serialize

import (
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/oxideframe/envgraph/frame"
	"github.com/oxideframe/envgraph/graph"
)

// Option configures SaveGraph/SaveToFile/LoadGraph/LoadFromFile.
type Option func(*options)

type options struct {
	logger *log.Logger
}

func defaultOptions() options {
	return options{logger: log.New(os.Stderr, "serialize: ", log.LstdFlags)}
}

// WithLogger overrides the diagnostic logger used when an item's class
// has no registered codec and has to be skipped.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// SaveGraph encodes g's current state — every frame, every item with a
// registered codec, and every edge pair — into the versioned archive
// format. Per-vertex item encoding is independent, so it is fanned out
// across an errgroup; the shared vertices slice is written back by
// index, with a mutex guarding only the diagnostic logger so concurrent
// "no codec registered" warnings don't interleave.
func SaveGraph(g *graph.EnvireGraph, header GraphHeader, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	header.Version = CurrentArchiveVersion

	ids := g.FrameIDs()
	vertices := make([]vertexRecord, len(ids))
	var logMu sync.Mutex
	var eg errgroup.Group
	for i, id := range ids {
		i, id := i, id
		eg.Go(func() error {
			f, err := g.Frame(id)
			if err != nil {
				return err
			}
			vr, err := encodeFrame(id, f, o.logger, &logMu)
			if err != nil {
				return err
			}
			vertices[i] = vr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	edgePairs := g.EdgePairs()
	edges := make([]edgeRecord, len(edgePairs))
	for i, ep := range edgePairs {
		edges[i] = edgeRecord{Origin: ep.Origin, Target: ep.Target, Payload: ep.Payload}
	}

	doc := document{Header: header, Vertices: vertices, Edges: edges}
	return yaml.Marshal(doc)
}

// encodeFrame dispatches every item in f to its registered Codec,
// skipping (and logging) items whose class has none.
func encodeFrame(id string, f *frame.Frame, logger *log.Logger, logMu *sync.Mutex) (vertexRecord, error) {
	vr := vertexRecord{FrameID: id}
	for _, tag := range f.Items().Types() {
		items, err := f.Items().Items(tag)
		if err != nil {
			return vertexRecord{}, err
		}
		group := itemTagGroup{Tag: tag}
		for _, it := range items {
			className := it.ClassName()
			codec, ok := LookupCodec(className)
			if !ok {
				logMu.Lock()
				logger.Printf("skipping item %s in frame %q: no codec registered for class %q", it.UUID(), id, className)
				logMu.Unlock()
				continue
			}
			data, err := codec.SaveBinary(it)
			if err != nil {
				return vertexRecord{}, fmt.Errorf("serialize: encoding item %s (class %q): %w", it.UUID(), className, err)
			}
			group.Items = append(group.Items, itemRecord{
				ClassName: className,
				UUID:      it.UUID(),
				Timestamp: it.Timestamp(),
				Data:      data,
			})
		}
		if len(group.Items) > 0 {
			vr.Items = append(vr.Items, group)
		}
	}
	return vr, nil
}

// SaveToFile writes SaveGraph's output to path.
func SaveToFile(path string, g *graph.EnvireGraph, header GraphHeader, opts ...Option) error {
	data, err := SaveGraph(g, header, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
