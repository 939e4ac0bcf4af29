package project

import "github.com/sadopc/rased/internal/review"

// Catalog is the project list as the UI sees it: the projects, the current
// criteria and the page pointer. Any criteria change starts again on page 1.
// Catalog is not safe for concurrent use.
type Catalog struct {
	projects []Project
	pager    *review.Paginator
	criteria Criteria
	filtered []Project
}

func NewCatalog(projects []Project, pageSize int) *Catalog {
	c := &Catalog{
		projects: append([]Project(nil), projects...),
		pager:    review.NewPaginator(pageSize),
	}
	c.recompute()
	return c
}

// NewSeededCatalog returns a catalog over SeedProjects.
func NewSeededCatalog(pageSize int) *Catalog {
	return NewCatalog(SeedProjects(), pageSize)
}

func (c *Catalog) recompute() {
	c.filtered = Filter(c.projects, c.criteria)
	c.pager.SetCount(len(c.filtered))
}

func (c *Catalog) setCriteria(next Criteria) {
	if next != c.criteria {
		c.criteria = next
		c.pager.Reset()
	}
	c.recompute()
}

// --- Commands ---

func (c *Catalog) Search(query string) {
	next := c.criteria
	next.Query = query
	c.setCriteria(next)
}

func (c *Catalog) FilterStatus(s Status) {
	next := c.criteria
	next.Status = s
	c.setCriteria(next)
}

func (c *Catalog) FilterType(t Type) {
	next := c.criteria
	next.Type = t
	c.setCriteria(next)
}

// CycleStatus steps the status filter through All and each status.
func (c *Catalog) CycleStatus() {
	c.FilterStatus(cycle(Statuses, c.criteria.Status))
}

// CycleType steps the type filter through All and each type.
func (c *Catalog) CycleType() {
	c.FilterType(cycle(Types, c.criteria.Type))
}

// cycle returns the value after cur in "", all[0], ..., all[n-1], "".
func cycle[T comparable](all []T, cur T) T {
	var zero T
	if cur == zero {
		return all[0]
	}
	for i, v := range all {
		if v == cur && i+1 < len(all) {
			return all[i+1]
		}
	}
	return zero
}

func (c *Catalog) GotoPage(n int) { c.pager.Goto(n) }
func (c *Catalog) Next()         { c.pager.Next() }
func (c *Catalog) Prev()         { c.pager.Prev() }

// --- Views ---

func (c *Catalog) Criteria() Criteria { return c.criteria }
func (c *Catalog) CurrentPage() int   { return c.pager.Current() }
func (c *Catalog) TotalPages() int    { return c.pager.TotalPages() }
func (c *Catalog) HasPrev() bool      { return c.pager.HasPrev() }
func (c *Catalog) HasNext() bool      { return c.pager.HasNext() }

func (c *Catalog) Range() (start, end, total int) {
	return c.pager.Range()
}

// All returns a copy of every project regardless of criteria.
func (c *Catalog) All() []Project {
	return append([]Project(nil), c.projects...)
}

// Filtered returns a copy of the projects matching the criteria.
func (c *Catalog) Filtered() []Project {
	return append([]Project(nil), c.filtered...)
}

// Page returns the projects on the current page.
func (c *Catalog) Page() []Project {
	return review.PageOf(c.pager, c.filtered)
}
