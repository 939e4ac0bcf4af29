package review

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(SeedReports())
	require.NoError(t, err)
	return s
}

func TestSeedFixture(t *testing.T) {
	s := newTestStore(t)
	require.Equal(t, 14, s.Len())

	counts := s.CountByStatus()
	assert.Equal(t, 6, counts[StatusPending])
	assert.Equal(t, 5, counts[StatusApproved])
	assert.Equal(t, 3, counts[StatusRejected])
}

func TestStoreAllPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	all := s.All()
	for i, r := range all {
		assert.Equal(t, fmt.Sprintf("r-%d", 1001+i), r.ID)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	all := s.All()
	all[0].Status = StatusRejected
	all[0].Notes = "tampered"

	r, ok := s.Get("r-1001")
	require.True(t, ok)
	assert.Equal(t, StatusPending, r.Status)
	assert.Empty(t, r.Notes)
}

func TestStoreRejectsDuplicateIDs(t *testing.T) {
	s := newTestStore(t)

	err := s.Add(Report{ID: "r-1001", Company: "Copy"})
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 14, s.Len())

	_, err = NewStore([]Report{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestStoreUniqueIDsAcrossCreates(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	ids := []string{"a", "b", "a", "c", "b", "d", "a"}
	for _, id := range ids {
		_ = s.Add(Report{ID: id})
	}

	seen := make(map[string]bool)
	for _, r := range s.All() {
		require.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Equal(t, 4, s.Len())
}

func TestStoreAddValidation(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.ErrorIs(t, s.Add(Report{}), ErrEmptyID)
	require.ErrorIs(t, s.Add(Report{ID: "x", Status: "archived"}), ErrInvalidStatus)

	require.NoError(t, s.Add(Report{ID: "y"}))
	r, _ := s.Get("y")
	assert.Equal(t, StatusPending, r.Status, "missing status defaults to pending")
}

func TestSetStatusChangesOnlyStatus(t *testing.T) {
	s := newTestStore(t)
	before, _ := s.Get("r-1002")

	s.SetStatus("r-1002", StatusRejected)

	after, _ := s.Get("r-1002")
	assert.Equal(t, StatusRejected, after.Status)
	after.Status = before.Status
	assert.Equal(t, before, after)

	// Order unchanged.
	assert.Equal(t, "r-1002", s.All()[1].ID)
}

func TestSetStatusUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := s.All()

	assert.NotPanics(t, func() {
		s.SetStatus("nonexistent-id", StatusApproved)
		s.SetNotes("nonexistent-id", "hello")
	})
	assert.Equal(t, before, s.All())
}

func TestSetStatusIdempotent(t *testing.T) {
	once := newTestStore(t)
	twice := newTestStore(t)

	once.SetStatus("r-1001", StatusApproved)
	twice.SetStatus("r-1001", StatusApproved)
	twice.SetStatus("r-1001", StatusApproved)

	assert.Equal(t, once.All(), twice.All())
}

func TestStatusTransitionsAreUnrestricted(t *testing.T) {
	s := newTestStore(t)
	for _, from := range Statuses {
		for _, to := range Statuses {
			s.SetStatus("r-1001", from)
			s.SetStatus("r-1001", to)
			r, _ := s.Get("r-1001")
			assert.Equal(t, to, r.Status, "%s -> %s", from, to)
			assert.True(t, r.Status.Valid())
		}
	}
}

func TestSetNotes(t *testing.T) {
	s := newTestStore(t)
	s.SetNotes("r-1003", "site visit scheduled")
	r, _ := s.Get("r-1003")
	assert.Equal(t, "site visit scheduled", r.Notes)
	assert.Equal(t, StatusPending, r.Status)
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Approved ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, st)

	_, err = ParseStatus("archived")
	require.ErrorIs(t, err, ErrInvalidStatus)
}
