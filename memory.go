package colframe

import (
	"sync"
)

// Releasable represents any resource holding Arrow memory. Columns and
// tables both implement it.
type Releasable interface {
	Release()
}

// MemoryManager releases a group of columns and tables together.
//
// Operator chains produce many short-lived intermediate columns; tracking them
// in one manager replaces a defer per result. The manager is safe for
// concurrent use.
//
// Example:
//
//	err := colframe.WithMemoryManager(func(m *colframe.MemoryManager) error {
//		shipped, err := price.Add(5.0)
//		if err != nil {
//			return err
//		}
//		m.Track(shipped)
//		mask, err := shipped.Gt(10.0)
//		if err != nil {
//			return err
//		}
//		m.Track(mask)
//		return report(mask)
//	})
type MemoryManager struct {
	mu        sync.Mutex
	resources []Releasable
}

// NewMemoryManager creates an empty memory manager
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{}
}

// Track adds a resource to be released by ReleaseAll. Nil resources are ignored.
func (m *MemoryManager) Track(resource Releasable) {
	if resource == nil {
		return
	}
	m.mu.Lock()
	m.resources = append(m.resources, resource)
	m.mu.Unlock()
}

// Count returns the number of tracked resources
func (m *MemoryManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resources)
}

// ReleaseAll releases tracked resources in reverse order of tracking
func (m *MemoryManager) ReleaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.resources) - 1; i >= 0; i-- {
		m.resources[i].Release()
	}
	m.resources = m.resources[:0]
}

// WithMemoryManager runs fn with a fresh manager and releases everything it
// tracked once fn returns.
func WithMemoryManager(fn func(*MemoryManager) error) error {
	manager := NewMemoryManager()
	defer manager.ReleaseAll()
	return fn(manager)
}

// WithTable builds a table, runs fn with it and releases the table afterwards.
// A build error is returned without calling fn.
func WithTable(factory func() (*Table, error), fn func(*Table) error) error {
	table, err := factory()
	if err != nil {
		return err
	}
	defer table.Release()
	return fn(table)
}
