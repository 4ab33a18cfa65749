// Package registry tracks the natural keys of every accepted entity for the
// lifetime of the process, so that no two batches ever issue a duplicate
// customer, agent, restaurant or menu item.
package registry

import (
	"strings"
	"sync"
)

type Kind int

const (
	CustomerMobile Kind = iota
	CustomerEmail
	CustomerNameDob
	AgentPhone
	RestaurantNameLocation
	MenuRestaurantItem

	numKinds
)

type Entry struct {
	Kind Kind
	Key  string
}

// Registry is an append-only set of issued natural keys. All operations
// take one lock, so a single Add of several entries is atomic even when
// multiple workers build batches concurrently.
type Registry struct {
	mu   sync.Mutex
	sets [numKinds]map[string]struct{}
}

func New() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	for i := range r.sets {
		r.sets[i] = make(map[string]struct{})
	}
}

func (r *Registry) Contains(kind Kind, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sets[kind][key]
	return ok
}

func (r *Registry) Register(kind Kind, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[kind][key] = struct{}{}
}

// Add registers all entries if none of them is already present. It reports
// whether the registration happened. The check and the registration run
// under one lock: either every key is claimed or none is.
func (r *Registry) Add(entries ...Entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		if _, ok := r.sets[e.Kind][e.Key]; ok {
			return false
		}
	}
	for _, e := range entries {
		r.sets[e.Kind][e.Key] = struct{}{}
	}
	return true
}

func (r *Registry) Len(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets[kind])
}

// Reset drops every registered key. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

// NameDobKey builds the customer name+date-of-birth natural key.
func NameDobKey(name, dob string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + dob
}

// RestaurantKey builds the restaurant name+location natural key.
func RestaurantKey(name, locationId string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + locationId
}

// MenuKey builds the menu restaurant+item-name natural key.
func MenuKey(restaurantId, itemName string) string {
	return restaurantId + "|" + strings.ToLower(strings.TrimSpace(itemName))
}
