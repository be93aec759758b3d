package redirect

import "context"

// Registrar registers new entries. Any code and url are accepted, including empty
// strings and codes that are already registered.
type Registrar struct {
	entries EntryStore
}

// NewRegistrar creates a registrar backed by the given entry store.
func NewRegistrar(entries EntryStore) *Registrar {
	return &Registrar{entries: entries}
}

func (r *Registrar) Register(ctx context.Context, code, url string) (Entry, error) {
	return r.entries.Insert(ctx, code, url)
}
