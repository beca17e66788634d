// Package sink turns decoded records into output: human-readable text,
// structured documents, a SQL store, or a re-encoded log.
package sink

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"

	"firestige.xyz/rcg/pkg/rcg"
)

// Sink is a Handler that owns an output and must be closed.
type Sink interface {
	rcg.Handler
	Close() error
}

// Target is where a sink writes.
type Target struct {
	Writer io.Writer // record stream destination; unused by sinks that own a path
	Path   string    // named destination, required by sinks that own a path
}

// Factory builds a sink from a target and raw options.
type Factory func(t Target, opts map[string]interface{}) (Sink, error)

// Definition describes one registered sink type.
type Definition struct {
	Name        string
	Description string
	OwnsPath    bool // opens Target.Path itself instead of writing to Target.Writer
	Binary      bool // emits bytes unfit for a terminal
	New         Factory
}

type registryImpl struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

var registry = &registryImpl{defs: make(map[string]Definition)}

// Register adds a sink definition.
func Register(d Definition) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if d.Name == "" || d.New == nil {
		return fmt.Errorf("sink definition requires a name and a factory")
	}
	if _, exists := registry.defs[d.Name]; exists {
		return fmt.Errorf("sink '%s' already registered", d.Name)
	}
	registry.defs[d.Name] = d
	return nil
}

func mustRegister(d Definition) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under name.
func Lookup(name string) (Definition, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	d, exists := registry.defs[name]
	if !exists {
		return Definition{}, fmt.Errorf("sink '%s' not found", name)
	}
	return d, nil
}

// New builds the sink registered under name.
func New(name string, t Target, opts map[string]interface{}) (Sink, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if d.OwnsPath && t.Path == "" {
		return nil, fmt.Errorf("sink '%s' requires an output path", name)
	}
	if !d.OwnsPath && t.Writer == nil {
		return nil, fmt.Errorf("sink '%s' requires an output writer", name)
	}
	s, err := d.New(t, opts)
	if err != nil {
		return nil, fmt.Errorf("sink '%s': %w", name, err)
	}
	return s, nil
}

// List returns every definition sorted by name.
func List() []Definition {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]Definition, 0, len(registry.defs))
	for _, d := range registry.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// decodeOptions maps raw options onto a typed struct. Unknown keys are errors.
func decodeOptions(opts map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
