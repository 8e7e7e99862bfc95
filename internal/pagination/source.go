package pagination

import (
	"context"
	"errors"
	"fmt"
)

const (
	OpCount = "count"
	OpPage  = "page"
)

// ErrInvalidWindow is returned for a page or page size below 1.
var ErrInvalidWindow = errors.New("pagination: invalid window")

// Source is the remote tabular data source. Implementations honor the descriptor's
// filters and ordering; Fetch returns at most w.Limit rows starting at w.Offset.
type Source[T any] interface {
	Count(ctx context.Context, d Descriptor) (int, error)
	Fetch(ctx context.Context, d Descriptor, w Window) ([]T, error)
}

// FetchError wraps a transport failure of one of the two queries.
type FetchError struct {
	Op       string
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("pagination: %s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err carries a *FetchError.
func IsFetchError(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}

// FetchCount issues the count-only query.
func FetchCount[T any](ctx context.Context, src Source[T], d Descriptor) (int, error) {
	n, err := src.Count(ctx, d)
	if err != nil {
		return 0, &FetchError{Op: OpCount, Resource: d.Resource, Err: err}
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// FetchPage issues the windowed query for page. The result is never nil.
func FetchPage[T any](ctx context.Context, src Source[T], d Descriptor, page, pageSize int) ([]T, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("%w: page=%d size=%d", ErrInvalidWindow, page, pageSize)
	}
	rows, err := src.Fetch(ctx, d, WindowFor(page, pageSize))
	if err != nil {
		return nil, &FetchError{Op: OpPage, Resource: d.Resource, Err: err}
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
