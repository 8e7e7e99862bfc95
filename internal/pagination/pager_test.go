package pagination

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lot struct {
	ID       int
	Material string
}

// memSource serves rows from memory and records the windows it was asked for.
type memSource struct {
	mu       sync.Mutex
	rows     []lot
	countErr error
	fetchErr error
	windows  []Window
	// entered and gate, when set, park Fetch until the test releases it.
	entered chan struct{}
	gate    chan struct{}
	// countEntered and countGate do the same for Count.
	countEntered chan struct{}
	countGate    chan struct{}
}

func (s *memSource) setRows(rows []lot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
}

func (s *memSource) match(d Descriptor, r lot) bool {
	if v, ok := d.Filters["material"]; ok && v != r.Material {
		return false
	}
	return true
}

func (s *memSource) Count(ctx context.Context, d Descriptor) (int, error) {
	if s.countEntered != nil {
		s.countEntered <- struct{}{}
	}
	if s.countGate != nil {
		select {
		case <-s.countGate:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	if s.countErr != nil {
		return 0, s.countErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.rows {
		if s.match(d, r) {
			n++
		}
	}
	return n, nil
}

func (s *memSource) Fetch(ctx context.Context, d Descriptor, w Window) ([]lot, error) {
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = append(s.windows, w)
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	var out []lot
	for _, r := range s.rows {
		if !s.match(d, r) {
			continue
		}
		out = append(out, r)
	}
	if w.Offset >= len(out) {
		return nil, nil
	}
	end := w.End()
	if end > len(out) {
		end = len(out)
	}
	return out[w.Offset:end], nil
}

func seed(n int) []lot {
	out := make([]lot, n)
	for i := range out {
		m := "cobre_mel"
		if i%2 == 1 {
			m = "latao"
		}
		out[i] = lot{ID: i + 1, Material: m}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ count, size, want int }{
		{0, 50, 0},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{237, 50, 5},
		{237, 25, 10},
		{10, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.count, c.size), "count=%d size=%d", c.count, c.size)
	}
}

func TestNewStartsAtFirstPage(t *testing.T) {
	p := New[lot](&memSource{}, NewDescriptor("entradas"), 50)
	st := p.State()
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 50, st.PageSize)
	assert.Equal(t, 0, st.TotalPages)

	p = New[lot](&memSource{}, NewDescriptor("entradas"), 0)
	assert.Equal(t, DefaultPageSize, p.State().PageSize)
}

func TestGoToPageBounds(t *testing.T) {
	src := &memSource{rows: seed(237)}
	p := New[lot](src, NewDescriptor("entradas"), 50)
	require.NoError(t, p.Refetch(context.Background()))
	require.Equal(t, 5, p.State().TotalPages)

	for _, n := range []int{0, -3, 6, 100} {
		assert.False(t, p.GoToPage(n), "page %d", n)
		assert.Equal(t, 1, p.State().Page)
	}

	assert.True(t, p.GoToPage(5))
	assert.Equal(t, 5, p.State().Page)
	assert.Equal(t, Window{Offset: 200, Limit: 50}, p.State().Window())

	require.NoError(t, p.Refetch(context.Background()))
	snap := p.Snapshot()
	assert.Len(t, snap.Rows, 37)
	assert.Equal(t, 201, snap.Rows[0].ID)
	assert.Equal(t, "Mostrando 201–237 de 237", snap.State.Summary())
}

func TestNextPrevClamp(t *testing.T) {
	src := &memSource{rows: seed(120)}
	p := New[lot](src, NewDescriptor("entradas"), 50)
	require.NoError(t, p.Refetch(context.Background()))

	assert.False(t, p.PrevPage())
	assert.Equal(t, 1, p.State().Page)

	assert.True(t, p.NextPage())
	assert.True(t, p.NextPage())
	assert.Equal(t, 3, p.State().Page)
	assert.False(t, p.NextPage())
	assert.Equal(t, 3, p.State().Page)

	assert.True(t, p.PrevPage())
	assert.Equal(t, 2, p.State().Page)
}

func TestSetPageSizeResetsPage(t *testing.T) {
	src := &memSource{rows: seed(237)}
	p := New[lot](src, NewDescriptor("entradas"), 50)
	require.NoError(t, p.Refetch(context.Background()))
	require.True(t, p.GoToPage(3))

	p.SetPageSize(25)
	st := p.State()
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 25, st.PageSize)
	assert.Equal(t, 10, st.TotalPages)

	require.True(t, p.GoToPage(3))
	p.SetPageSize(0)
	assert.Equal(t, 25, p.State().PageSize)
	assert.Equal(t, 1, p.State().Page)
}

func TestEmptyResult(t *testing.T) {
	p := New[lot](&memSource{}, NewDescriptor("saidas"), 50)
	require.NoError(t, p.Load(context.Background(), 1))

	snap := p.Snapshot()
	assert.Equal(t, 0, snap.State.TotalPages)
	assert.Empty(t, snap.Rows)
	assert.NotNil(t, snap.Rows)
	assert.False(t, snap.State.HasPrev())
	assert.False(t, snap.State.HasNext())
	assert.Equal(t, "Nenhum registro encontrado", snap.State.Summary())
	assert.False(t, p.NextPage())
}

func TestLoadHonorsFiltersAndIgnoresUnreachablePage(t *testing.T) {
	src := &memSource{rows: seed(100)}
	d := NewDescriptor("entradas").WithFilter("material", "latao")
	p := New[lot](src, d, 25)

	require.NoError(t, p.Load(context.Background(), 2))
	snap := p.Snapshot()
	assert.Equal(t, 50, snap.State.TotalCount)
	assert.Equal(t, 2, snap.State.Page)
	require.Len(t, snap.Rows, 25)
	for _, r := range snap.Rows {
		assert.Equal(t, "latao", r.Material)
	}

	require.NoError(t, p.Load(context.Background(), 9))
	assert.Equal(t, 2, p.State().Page)
}

func TestFetchErrorsAreTyped(t *testing.T) {
	boom := errors.New("connection refused")

	p := New[lot](&memSource{countErr: boom}, NewDescriptor("entradas"), 50)
	err := p.Load(context.Background(), 1)
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, OpCount, fe.Op)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, p.Snapshot().Err, boom)
	assert.False(t, p.Snapshot().Fetching)

	p = New[lot](&memSource{rows: seed(3), fetchErr: boom}, NewDescriptor("entradas"), 50)
	err = p.Refetch(context.Background())
	require.True(t, IsFetchError(err))
	assert.ErrorIs(t, err, boom)
}

func TestFetchPageRejectsBadWindow(t *testing.T) {
	_, err := FetchPage[lot](context.Background(), &memSource{}, NewDescriptor("x"), 0, 50)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	_, err = FetchPage[lot](context.Background(), &memSource{}, NewDescriptor("x"), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestStaleLoadIsDropped(t *testing.T) {
	src := &memSource{rows: seed(237), entered: make(chan struct{}), gate: make(chan struct{})}
	p := New[lot](src, NewDescriptor("entradas"), 50)

	done := make(chan error, 1)
	go func() { done <- p.Refetch(context.Background()) }()

	// The refetch is parked inside Fetch; changing the size supersedes it.
	<-src.entered
	p.SetPageSize(25)
	close(src.gate)

	err := <-done
	assert.ErrorIs(t, err, ErrSuperseded)
	snap := p.Snapshot()
	assert.Empty(t, snap.Rows)
	assert.Equal(t, 0, snap.State.TotalCount)
	assert.Equal(t, 25, snap.State.PageSize)
}

func TestSetDescriptorResets(t *testing.T) {
	src := &memSource{rows: seed(237)}
	p := New[lot](src, NewDescriptor("entradas"), 50)
	require.NoError(t, p.Refetch(context.Background()))
	require.True(t, p.GoToPage(4))

	p.SetDescriptor(NewDescriptor("entradas").WithFilter("material", "cobre_mel"))
	st := p.State()
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 0, st.TotalCount)
	assert.Equal(t, 50, st.PageSize)
	assert.Empty(t, p.Snapshot().Rows)
}

func TestRefetchClampsWhenResultShrinks(t *testing.T) {
	src := &memSource{rows: seed(237)}
	p := New[lot](src, NewDescriptor("entradas"), 50)
	require.NoError(t, p.Refetch(context.Background()))
	require.True(t, p.GoToPage(5))
	require.NoError(t, p.Refetch(context.Background()))

	src.setRows(seed(60))
	require.NoError(t, p.Refetch(context.Background()))

	snap := p.Snapshot()
	assert.Equal(t, 2, snap.State.Page)
	assert.Equal(t, 2, snap.State.TotalPages)
	require.Len(t, snap.Rows, 10)
	assert.Equal(t, 51, snap.Rows[0].ID)
	assert.Equal(t, "Mostrando 51–60 de 60", snap.State.Summary())

	assert.True(t, snap.State.HasPrev())
	assert.True(t, p.PrevPage())
	assert.Equal(t, 1, p.State().Page)
}

func TestLoadClampsWhenResultShrinks(t *testing.T) {
	src := &memSource{rows: seed(237)}
	p := New[lot](src, NewDescriptor("entradas"), 50)
	require.NoError(t, p.Load(context.Background(), 5))
	require.Equal(t, 5, p.State().Page)

	src.setRows(seed(60))
	require.NoError(t, p.Load(context.Background(), 9))

	snap := p.Snapshot()
	assert.Equal(t, 2, snap.State.Page)
	assert.Len(t, snap.Rows, 10)
	assert.Equal(t, "Mostrando 51–60 de 60", snap.State.Summary())

	src.setRows(nil)
	require.NoError(t, p.Load(context.Background(), 2))
	snap = p.Snapshot()
	assert.Equal(t, 1, snap.State.Page)
	assert.Empty(t, snap.Rows)
	assert.False(t, snap.State.HasPrev())
}

func TestLoadSupersededDuringCount(t *testing.T) {
	src := &memSource{rows: seed(237), countEntered: make(chan struct{}), countGate: make(chan struct{})}
	p := New[lot](src, NewDescriptor("entradas"), 50)

	done := make(chan error, 1)
	go func() { done <- p.Load(context.Background(), 3) }()

	<-src.countEntered
	p.SetPageSize(25)
	close(src.countGate)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	snap := p.Snapshot()
	assert.Equal(t, 0, snap.State.TotalCount)
	assert.Equal(t, 1, snap.State.Page)
	assert.Equal(t, 25, snap.State.PageSize)
	assert.False(t, snap.Fetching)
	assert.Empty(t, src.windows)
}

func TestLoadSupersededDuringFetch(t *testing.T) {
	src := &memSource{rows: seed(237), entered: make(chan struct{}), gate: make(chan struct{})}
	p := New[lot](src, NewDescriptor("entradas"), 50)

	done := make(chan error, 1)
	go func() { done <- p.Load(context.Background(), 3) }()

	// The count has landed and the fetch for page 3 is parked.
	<-src.entered
	assert.Equal(t, 3, p.State().Page)
	p.SetPageSize(25)
	close(src.gate)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	snap := p.Snapshot()
	assert.Empty(t, snap.Rows)
	assert.Equal(t, 1, snap.State.Page)
	assert.Equal(t, 10, snap.State.TotalPages)
	assert.False(t, snap.Fetching)
}
