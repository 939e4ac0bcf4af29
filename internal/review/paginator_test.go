package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatorTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{14, 5, 3},
		{15, 5, 3},
		{16, 5, 4},
		{7, 1, 7},
	}
	for _, tt := range tests {
		p := NewPaginator(tt.size)
		p.SetCount(tt.n)
		assert.Equal(t, tt.want, p.TotalPages(), "n=%d size=%d", tt.n, tt.size)
	}
}

func TestPaginatorDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).Size())
	assert.Equal(t, DefaultPageSize, NewPaginator(-3).Size())
	assert.Equal(t, 10, NewPaginator(10).Size())
}

func TestPaginatorSaturates(t *testing.T) {
	p := NewPaginator(5)
	p.SetCount(14)

	p.Prev()
	assert.Equal(t, 1, p.Current())
	assert.False(t, p.HasPrev())

	p.Next()
	p.Next()
	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Current())
	assert.False(t, p.HasNext())

	p.Prev()
	assert.Equal(t, 2, p.Current())
}

func TestPaginatorGotoClamps(t *testing.T) {
	p := NewPaginator(5)
	p.SetCount(14)

	p.Goto(99)
	assert.Equal(t, 3, p.Current())
	p.Goto(-1)
	assert.Equal(t, 1, p.Current())
	p.Goto(2)
	assert.Equal(t, 2, p.Current())
}

func TestPaginatorClampOnShrink(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for from := 0; from <= 30; from++ {
			for to := 0; to <= 30; to++ {
				p := NewPaginator(size)
				p.SetCount(from)
				p.Goto(p.TotalPages())
				p.SetCount(to)

				assert.GreaterOrEqual(t, p.Current(), 1)
				assert.LessOrEqual(t, p.Current(), p.TotalPages())
			}
		}
	}
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	p := NewPaginator(5)
	p.SetCount(len(items))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, PageOf(p, items))
	p.Next()
	assert.Equal(t, []int{6, 7, 8, 9, 10}, PageOf(p, items))
	p.Next()
	assert.Equal(t, []int{11, 12, 13, 14}, PageOf(p, items))

	page := PageOf(p, items)
	page[0] = 99
	assert.Equal(t, 11, items[10], "page is a copy")
}

func TestPaginatorRange(t *testing.T) {
	p := NewPaginator(5)

	p.SetCount(0)
	start, end, total := p.Range()
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{start, end, total})

	p.SetCount(14)
	p.Goto(3)
	start, end, total = p.Range()
	assert.Equal(t, [3]int{11, 14, 14}, [3]int{start, end, total})
}
