package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/classpoint/brandkit/domains/brand/config"
)

//go:embed seeds/*.json
var seedFS embed.FS

// Registry holds the raw tenant documents keyed by tenant id. Registration
// is expected during application startup, before resolution begins; the lock
// keeps late registrations from tearing a concurrent lookup but there is no
// broader ordering guarantee.
type Registry struct {
	mu   sync.RWMutex
	docs map[string]config.Document
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{docs: make(map[string]config.Document)}
}

// NewWithSeeds constructs a Registry pre-loaded with the embedded tenant
// documents shipped in the binary.
func NewWithSeeds() (*Registry, error) {
	r := New()

	seeds, err := SeedDocuments()
	if err != nil {
		return nil, err
	}
	for id, payload := range seeds {
		var doc config.Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("decode seed document %q: %w", id, err)
		}
		r.Register(id, doc)
	}

	return r, nil
}

// SeedDocuments returns the embedded raw seed payloads keyed by tenant id
// (the document's id field, falling back to the file name). Exposed so
// authoring tools can validate the exact bytes that ship.
func SeedDocuments() (map[string][]byte, error) {
	entries, err := seedFS.ReadDir("seeds")
	if err != nil {
		return nil, fmt.Errorf("read embedded seeds: %w", err)
	}

	out := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		payload, err := seedFS.ReadFile(path.Join("seeds", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read seed %q: %w", entry.Name(), err)
		}

		var idOnly struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(payload, &idOnly); err != nil {
			return nil, fmt.Errorf("decode seed %q: %w", entry.Name(), err)
		}
		id := idOnly.ID
		if id == "" {
			id = strings.TrimSuffix(entry.Name(), ".json")
		}
		out[id] = payload
	}

	return out, nil
}

// Register adds or replaces the document for a tenant id. No merge happens:
// the new document wins wholesale.
func (r *Registry) Register(id string, doc config.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[id] = doc
}

// Lookup returns the raw document for a tenant id.
func (r *Registry) Lookup(id string) (config.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	return doc, ok
}

// IDs returns the registered tenant ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
