package advisor

import (
	"strings"
	"sync"

	"netadvisor/internal/knowledge"
)

// Contexts is a concurrency-safe, single-slot memory of each user's last
// vendor. Created lazily on first query, overwritten last-write-wins.
type Contexts struct {
	mu         sync.RWMutex
	lastVendor map[string]string
}

// NewContexts creates an empty context store.
func NewContexts() *Contexts {
	return &Contexts{lastVendor: make(map[string]string)}
}

// Get returns the remembered vendor for a user, if any.
func (c *Contexts) Get(userID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.lastVendor[userID]
	return v, ok
}

// Set overwrites the remembered vendor for a user.
func (c *Contexts) Set(userID, vendor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastVendor[userID] = vendor
}

// Resolver decides which vendors a query addresses, falling back to the
// user's remembered vendor and then to all vendors.
type Resolver struct {
	aliases  []knowledge.Alias
	all      []string
	contexts *Contexts
}

// NewResolver creates a resolver over the fixed vendor alias table.
func NewResolver(contexts *Contexts) *Resolver {
	return &Resolver{
		aliases:  knowledge.Aliases(),
		all:      knowledge.VendorNames(),
		contexts: contexts,
	}
}

// Detect returns a non-empty ordered vendor list for the normalized query.
// Alias matching is a case-insensitive substring scan in alias-table order.
// The user's remembered vendor is updated only when the scope came from the
// query itself or from that same remembered vendor; a broadcast fallback
// leaves context untouched so that one vague query cannot pin the user to an
// arbitrary vendor.
func (r *Resolver) Detect(query, userID string) []string {
	q := strings.ToLower(query)
	var found []string
	for _, a := range r.aliases {
		if strings.Contains(q, a.Token) && !containsString(found, a.Vendor) {
			found = append(found, a.Vendor)
		}
	}
	if len(found) > 0 {
		r.contexts.Set(userID, found[0])
		return found
	}
	if v, ok := r.contexts.Get(userID); ok {
		r.contexts.Set(userID, v)
		return []string{v}
	}
	out := make([]string, len(r.all))
	copy(out, r.all)
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
