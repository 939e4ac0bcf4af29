package review

// Row is one visible line of the review list.
type Row struct {
	Report Report
	Open   bool
}

// Board is the review list as the UI sees it: the store, the current query,
// the page pointer and the review session. Every command recomputes the
// filtered view and clamps the page before returning, so callers never see
// an out-of-range page. Board is not safe for concurrent use.
type Board struct {
	store    *Store
	pager    *Paginator
	session  *Session
	query    string
	filtered []Report
}

func NewBoard(store *Store, pageSize int) *Board {
	b := &Board{
		store:   store,
		pager:   NewPaginator(pageSize),
		session: NewSession(store),
	}
	b.recompute()
	return b
}

// NewSeededBoard returns a board over SeedReports.
func NewSeededBoard(pageSize int) *Board {
	store, err := NewStore(SeedReports())
	if err != nil {
		// The seed is a fixed literal with unique ids.
		panic(err)
	}
	return NewBoard(store, pageSize)
}

func (b *Board) recompute() {
	b.filtered = Filter(b.store.All(), b.query)
	b.pager.SetCount(len(b.filtered))
}

// --- Commands ---

// Search sets the query. A changed query always starts again on page 1.
func (b *Board) Search(query string) {
	if query != b.query {
		b.query = query
		b.pager.Reset()
	}
	b.recompute()
}

func (b *Board) GotoPage(n int) { b.pager.Goto(n) }
func (b *Board) Next()         { b.pager.Next() }
func (b *Board) Prev()         { b.pager.Prev() }

func (b *Board) OpenReview(id string) { b.session.Open(id) }
func (b *Board) CloseReview()        { b.session.Close() }

// SetStatus is the inline row action: it does not need or touch the review
// session.
func (b *Board) SetStatus(id string, status Status) {
	b.store.SetStatus(id, status)
	b.recompute()
}

// EditNotes updates notes for id when id is the report under review.
func (b *Board) EditNotes(id, text string) {
	if !b.session.IsOpen(id) {
		return
	}
	b.session.EditNotes(text)
	b.recompute()
}

// ApproveOpen approves the report under review and closes it.
func (b *Board) ApproveOpen() {
	b.session.ApproveAndClose()
	b.recompute()
}

// RejectOpen rejects the report under review and closes it.
func (b *Board) RejectOpen() {
	b.session.RejectAndClose()
	b.recompute()
}

// --- Views ---

func (b *Board) Store() *Store    { return b.store }
func (b *Board) Query() string    { return b.query }
func (b *Board) CurrentPage() int { return b.pager.Current() }
func (b *Board) TotalPages() int  { return b.pager.TotalPages() }
func (b *Board) PageSize() int    { return b.pager.Size() }
func (b *Board) HasPrev() bool    { return b.pager.HasPrev() }
func (b *Board) HasNext() bool    { return b.pager.HasNext() }

// Range returns the rows shown as 1-based start and end plus the total.
func (b *Board) Range() (start, end, total int) {
	return b.pager.Range()
}

// Filtered returns a copy of the reports matching the current query.
func (b *Board) Filtered() []Report {
	out := make([]Report, len(b.filtered))
	copy(out, b.filtered)
	return out
}

// Page returns the reports on the current page.
func (b *Board) Page() []Report {
	return PageOf(b.pager, b.filtered)
}

// Rows returns the current page with each report's review state.
func (b *Board) Rows() []Row {
	page := b.Page()
	rows := make([]Row, len(page))
	for i, r := range page {
		rows[i] = Row{Report: r, Open: b.session.IsOpen(r.ID)}
	}
	return rows
}

// OpenID returns the id under review, if any.
func (b *Board) OpenID() (string, bool) { return b.session.OpenID() }

// Selected returns the report under review, if any.
func (b *Board) Selected() (Report, bool) { return b.session.Selected() }

// Pending returns the number of pending reports in the whole store.
func (b *Board) Pending() int {
	return b.store.CountByStatus()[StatusPending]
}
