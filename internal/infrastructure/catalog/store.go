package catalog

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/driftline/storefront/internal/domain"
)

// Store holds loaded product snapshots keyed by handle. Snapshots are
// read once at startup and treated as immutable afterwards.
type Store struct {
	mutex    sync.RWMutex
	products map[string]*domain.Product
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{products: make(map[string]*domain.Product)}
}

// LoadDir reads every *.json snapshot in dir. A malformed file loads as
// an empty catalog rather than failing the whole store; only a missing
// directory is an error.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[CATALOG] skipping %s: %v", path, err)
			continue
		}
		product := ParseProduct(data)
		if product.Handle == "" {
			// Fall back to the file name so even a snapshot without a
			// handle stays addressable.
			product.Handle = entry.Name()[:len(entry.Name())-len(".json")]
		}
		s.Add(product)
	}

	log.Printf("[CATALOG] loaded %d products from %s", s.Len(), dir)
	return nil
}

// Add registers a product snapshot.
func (s *Store) Add(product *domain.Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.products[product.Handle] = product
}

// Product returns the snapshot for a handle.
func (s *Store) Product(handle string) (*domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	product, ok := s.products[handle]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// Handles returns every registered handle in sorted order.
func (s *Store) Handles() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	handles := make([]string, 0, len(s.products))
	for handle := range s.products {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}

// Len returns the number of loaded products.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products)
}
