package pagination

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrSuperseded is returned by a load whose result was dropped because the pager's
// parameters changed, or a newer load started, before it completed.
var ErrSuperseded = errors.New("pagination: superseded by a newer request")

// Result is what presentation code consumes.
type Result[T any] struct {
	Rows     []T
	State    State
	Loading  bool
	Fetching bool
	Err      error
}

// Pager holds the page state of one view over a Source.
//
// Every parameter change and every load bumps a generation counter. A load only
// applies its result if the generation is unchanged when it returns, so a slow
// response for page 2 can never overwrite page 3 that was requested after it.
type Pager[T any] struct {
	mu       sync.Mutex
	src      Source[T]
	desc     Descriptor
	state    State
	rows     []T
	err      error
	fetching bool
	gen      uint64
}

// New returns a pager at page 1. A non-positive pageSize falls back to DefaultPageSize.
func New[T any](src Source[T], d Descriptor, pageSize int) *Pager[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pager[T]{src: src, desc: d, state: newState(pageSize)}
}

func (p *Pager[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pager[T]) Descriptor() Descriptor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.desc.clone()
}

// Snapshot copies the consumer-facing view.
func (p *Pager[T]) Snapshot() Result[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	rows := make([]T, len(p.rows))
	copy(rows, p.rows)
	return Result[T]{
		Rows:     rows,
		State:    p.state,
		Loading:  p.fetching && p.rows == nil,
		Fetching: p.fetching,
		Err:      p.err,
	}
}

// invalidate drops any in-flight load. Callers hold p.mu.
func (p *Pager[T]) invalidate() {
	p.gen++
	p.fetching = false
}

// GoToPage moves to page n when 1 <= n <= TotalPages and reports whether n is now
// the current page. Anything else is ignored.
func (p *Pager[T]) GoToPage(n int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goTo(n)
}

func (p *Pager[T]) goTo(n int) bool {
	if !p.state.canGo(n) {
		return false
	}
	if n != p.state.Page {
		p.state.Page = n
		p.invalidate()
	}
	return true
}

func (p *Pager[T]) NextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goTo(p.state.Page + 1)
}

func (p *Pager[T]) PrevPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goTo(p.state.Page - 1)
}

// SetPageSize changes the page size and always returns to page 1, since old
// offsets mean nothing under a new size. A non-positive size keeps the current
// size but still resets the page.
func (p *Pager[T]) SetPageSize(size int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if size >= 1 {
		p.state.PageSize = size
	}
	p.state.Page = 1
	p.state.setTotal(p.state.TotalCount)
	p.invalidate()
}

// SetDescriptor switches to a new query identity. Page, total and rows reset.
func (p *Pager[T]) SetDescriptor(d Descriptor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.desc = d.clone()
	p.state = newState(p.state.PageSize)
	p.rows = nil
	p.err = nil
	p.invalidate()
}

func (p *Pager[T]) begin() (uint64, Descriptor, State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.fetching = true
	return p.gen, p.desc, p.state
}

// fail records err unless the load was superseded. Callers hold p.mu.
func (p *Pager[T]) fail(gen uint64, err error) error {
	if gen != p.gen {
		return ErrSuperseded
	}
	p.err = err
	p.fetching = false
	return err
}

// Refetch re-issues the count and page queries for the current parameters. The two
// queries run concurrently and may observe different backend snapshots.
func (p *Pager[T]) Refetch(ctx context.Context) error {
	gen, desc, st := p.begin()

	var (
		count int
		rows  []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := FetchCount(gctx, p.src, desc)
		count = n
		return err
	})
	g.Go(func() error {
		r, err := FetchPage(gctx, p.src, desc, st.Page, st.PageSize)
		rows = r
		return err
	})
	err := g.Wait()

	p.mu.Lock()
	if err != nil {
		err = p.fail(gen, err)
		p.mu.Unlock()
		return err
	}
	if gen != p.gen {
		p.mu.Unlock()
		return ErrSuperseded
	}
	p.state.setTotal(count)
	if p.state.Page == st.Page {
		p.apply(rows)
		p.mu.Unlock()
		return nil
	}
	// The total shrank below the page we fetched; load the clamped page instead.
	st = p.state
	p.mu.Unlock()
	return p.fetchWindow(ctx, gen, desc, st)
}

// apply stores a successful page. Callers hold p.mu.
func (p *Pager[T]) apply(rows []T) {
	p.rows = rows
	p.err = nil
	p.fetching = false
}

// fetchWindow loads the window of st and applies it unless gen was superseded.
func (p *Pager[T]) fetchWindow(ctx context.Context, gen uint64, desc Descriptor, st State) error {
	rows := []T{}
	var err error
	if st.TotalCount > 0 {
		rows, err = FetchPage(ctx, p.src, desc, st.Page, st.PageSize)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		return p.fail(gen, err)
	}
	if gen != p.gen {
		return ErrSuperseded
	}
	p.apply(rows)
	return nil
}

// Load counts first, then moves to page if it exists and fetches that window. An
// unreachable page leaves the current page in place, like GoToPage, after that
// page has been clamped to the new total.
func (p *Pager[T]) Load(ctx context.Context, page int) error {
	gen, desc, _ := p.begin()

	count, err := FetchCount(ctx, p.src, desc)

	p.mu.Lock()
	if err != nil {
		err = p.fail(gen, err)
		p.mu.Unlock()
		return err
	}
	if gen != p.gen {
		p.mu.Unlock()
		return ErrSuperseded
	}
	p.state.setTotal(count)
	if p.state.canGo(page) {
		p.state.Page = page
	}
	st := p.state
	p.mu.Unlock()

	return p.fetchWindow(ctx, gen, desc, st)
}
