// Package registry provides a global registry for trace exporters.
// Exporters register themselves in init() functions, allowing the CLI
// to discover them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wildfire/internal/fire"
)

// Options are the rendering settings shared by every exporter.
type Options struct {
	// FPS is the playback rate for animated outputs.
	FPS int
	// CellSize is the side of one grid cell in pixels.
	CellSize int
	// Label prints "Step N" on image frames.
	Label bool
}

// Exporter writes a simulation trace to disk.
type Exporter interface {
	// ID returns a unique identifier used on the command line (e.g., "video").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Export writes the trace into dir and returns the files it created.
	// Implementations check ctx between frames.
	Export(ctx context.Context, tr *fire.Trace, dir string, opts Options) ([]string, error)
}

// ExporterInfo contains metadata about a registered exporter.
type ExporterInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new exporter instance.
type Factory func() Exporter

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an exporter factory to the registry.
// Panics if an exporter with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: exporter %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered exporters sorted by ID.
func List() []ExporterInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ExporterInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ExporterInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an exporter by its ID.
func Create(id string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown exporter %q", id)
	}

	return f(), nil
}

// Exists checks if an exporter with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
