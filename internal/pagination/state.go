package pagination

import "fmt"

const DefaultPageSize = 50

// PageSizeOptions are the sizes offered by the dashboard selector.
var PageSizeOptions = []int{25, 50, 100, 200}

// NormalizePageSize snaps anything outside PageSizeOptions to DefaultPageSize.
func NormalizePageSize(size int) int {
	for _, opt := range PageSizeOptions {
		if size == opt {
			return size
		}
	}
	return DefaultPageSize
}

// TotalPages is ceil(count/size); zero when there is nothing to page.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// State is the page position plus the last known total.
type State struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func newState(pageSize int) State {
	return State{Page: 1, PageSize: pageSize}
}

// setTotal stores a fresh count and pulls Page back inside [1, TotalPages] when the
// result set shrank under it.
func (s *State) setTotal(count int) {
	if count < 0 {
		count = 0
	}
	s.TotalCount = count
	s.TotalPages = TotalPages(count, s.PageSize)
	switch {
	case s.TotalPages == 0 || s.Page < 1:
		s.Page = 1
	case s.Page > s.TotalPages:
		s.Page = s.TotalPages
	}
}

// canGo reports whether n is a reachable page under the current total.
func (s State) canGo(n int) bool {
	return n >= 1 && n <= s.TotalPages
}

func (s State) HasPrev() bool { return s.Page > 1 }

func (s State) HasNext() bool { return s.Page < s.TotalPages }

// Window is the row window of the current page.
func (s State) Window() Window { return WindowFor(s.Page, s.PageSize) }

// Summary renders the "showing X–Y of Z" line shown under tables.
func (s State) Summary() string {
	if s.TotalCount == 0 {
		return "Nenhum registro encontrado"
	}
	w := s.Window()
	from := w.Offset + 1
	to := w.End()
	if to > s.TotalCount {
		to = s.TotalCount
	}
	if from > to {
		return fmt.Sprintf("Mostrando 0 de %d", s.TotalCount)
	}
	return fmt.Sprintf("Mostrando %d–%d de %d", from, to, s.TotalCount)
}

// Window is a half-open [Offset, Offset+Limit) slice of an ordered result set.
type Window struct {
	Offset int
	Limit  int
}

// WindowFor maps a 1-based page to its row window.
func WindowFor(page, pageSize int) Window {
	return Window{Offset: (page - 1) * pageSize, Limit: pageSize}
}

func (w Window) End() int { return w.Offset + w.Limit }
