package hostlist

import "context"

// Lister supplies host identifiers when the caller does not pass an
// explicit list. Enumeration and filtering policy live entirely behind
// this interface; the census core never performs discovery itself.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// Static is a fixed, caller-provided host list.
type Static []string

// List implements Lister.
func (s Static) List(_ context.Context) ([]string, error) {
	return s, nil
}
