package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]TableDefinition)
	registryMu sync.RWMutex
)

// Register adds a projection definition to the registry.
// Panics if a projection with the same key is already registered.
func Register(def TableDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("table already registered: %s", def.Info.Key))
	}
	if len(def.Columns) == 0 {
		panic(fmt.Sprintf("table has no columns: %s", def.Info.Key))
	}

	registry[def.Info.Key] = def
}

// Get returns a projection definition by key.
// Returns false if not found.
func Get(key string) (TableDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// ByGroup returns all definitions for a specific group, in write order.
func ByGroup(group string) []TableDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var result []TableDefinition
	for _, def := range registry {
		if def.Info.Group == group {
			result = append(result, def)
		}
	}

	sortDefinitions(result)
	return result
}

func sortDefinitions(defs []TableDefinition) {
	sort.Slice(defs, func(i, j int) bool {
		a, b := defs[i].Info, defs[j].Info
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Key < b.Key
	})
}
