package review

// DefaultPageSize is the number of rows on one page of the review list.
const DefaultPageSize = 5

// Paginator tracks the current page over a result set of known size.
// Current is always within [1, TotalPages].
type Paginator struct {
	size    int
	count   int
	current int
}

// NewPaginator returns a paginator on page 1 of an empty set. Sizes below 1
// use DefaultPageSize.
func NewPaginator(size int) *Paginator {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Paginator{size: size, current: 1}
}

func (p *Paginator) Size() int       { return p.size }
func (p *Paginator) Count() int      { return p.count }
func (p *Paginator) Current() int    { return p.current }
func (p *Paginator) HasPrev() bool   { return p.current > 1 }
func (p *Paginator) HasNext() bool   { return p.current < p.TotalPages() }
func (p *Paginator) TotalPages() int { return totalPages(p.count, p.size) }

func totalPages(n, size int) int {
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// SetCount records a new result set size and clamps the current page.
func (p *Paginator) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	p.count = n
	p.clamp()
}

// Reset moves to the first page.
func (p *Paginator) Reset() { p.current = 1 }

func (p *Paginator) Next() {
	if p.current < p.TotalPages() {
		p.current++
	}
}

func (p *Paginator) Prev() {
	if p.current > 1 {
		p.current--
	}
}

// Goto moves to page n, clamped into range.
func (p *Paginator) Goto(n int) {
	p.current = n
	p.clamp()
}

func (p *Paginator) clamp() {
	if last := p.TotalPages(); p.current > last {
		p.current = last
	}
	if p.current < 1 {
		p.current = 1
	}
}

// Bounds returns the half-open index range of the current page.
func (p *Paginator) Bounds() (lo, hi int) {
	lo = (p.current - 1) * p.size
	hi = lo + p.size
	if lo > p.count {
		lo = p.count
	}
	if hi > p.count {
		hi = p.count
	}
	return lo, hi
}

// Range returns the 1-based first and last row numbers shown and the total,
// as in "Showing 6–10 of 14". start is 0 when there are no rows.
func (p *Paginator) Range() (start, end, total int) {
	lo, hi := p.Bounds()
	if p.count == 0 {
		return 0, 0, 0
	}
	return lo + 1, hi, p.count
}

// PageOf returns a fresh slice holding the current page of items. items is
// expected to have the length last passed to SetCount.
func PageOf[T any](p *Paginator, items []T) []T {
	lo, hi := p.Bounds()
	if hi > len(items) {
		hi = len(items)
	}
	if lo > hi {
		lo = hi
	}
	out := make([]T, hi-lo)
	copy(out, items[lo:hi])
	return out
}
