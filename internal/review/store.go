package review

import "fmt"

// Store owns the report list for one review session. Filtering, pagination
// and the review session read it or route mutations through it; none of
// them keep their own copy.
type Store struct {
	reports []Report
	index   map[string]int
}

// NewStore builds a store from seed, preserving order. Seed records with no
// status start as pending.
func NewStore(seed []Report) (*Store, error) {
	s := &Store{index: make(map[string]int, len(seed))}
	for _, r := range seed {
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends r. IDs must be non-empty and unique.
func (s *Store) Add(r Report) error {
	if r.ID == "" {
		return ErrEmptyID
	}
	if _, ok := s.index[r.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: %q for report %s", ErrInvalidStatus, r.Status, r.ID)
	}
	s.index[r.ID] = len(s.reports)
	s.reports = append(s.reports, r)
	return nil
}

// All returns a copy of the reports in insertion order.
func (s *Store) All() []Report {
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}

func (s *Store) Len() int { return len(s.reports) }

func (s *Store) Get(id string) (Report, bool) {
	i, ok := s.index[id]
	if !ok {
		return Report{}, false
	}
	return s.reports[i], true
}

// SetStatus replaces the status of report id. Unknown ids are ignored.
func (s *Store) SetStatus(id string, status Status) {
	if i, ok := s.index[id]; ok {
		s.reports[i].Status = status
	}
}

// SetNotes replaces the notes of report id. Unknown ids are ignored.
func (s *Store) SetNotes(id, notes string) {
	if i, ok := s.index[id]; ok {
		s.reports[i].Notes = notes
	}
}

// CountByStatus returns the number of reports in each status. Every status
// is present in the result, possibly with a zero count.
func (s *Store) CountByStatus() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, st := range Statuses {
		counts[st] = 0
	}
	for _, r := range s.reports {
		counts[r.Status]++
	}
	return counts
}
