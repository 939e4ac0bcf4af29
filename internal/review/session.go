package review

// Session tracks the one report open for detailed review. Opening another
// report replaces the current one.
type Session struct {
	store  *Store
	openID string
	open   bool
}

func NewSession(store *Store) *Session {
	return &Session{store: store}
}

func (s *Session) Open(id string) {
	s.openID = id
	s.open = true
}

func (s *Session) Close() {
	s.openID = ""
	s.open = false
}

// OpenID returns the id under review, if any.
func (s *Session) OpenID() (string, bool) {
	return s.openID, s.open
}

// IsOpen reports whether id is the report under review.
func (s *Session) IsOpen(id string) bool {
	return s.open && s.openID == id
}

// Selected returns the report under review.
func (s *Session) Selected() (Report, bool) {
	if !s.open {
		return Report{}, false
	}
	return s.store.Get(s.openID)
}

// EditNotes writes notes to the open report. No-op when nothing is open.
func (s *Session) EditNotes(text string) {
	if !s.open {
		return
	}
	s.store.SetNotes(s.openID, text)
}

// ApproveAndClose approves the open report and closes the session.
func (s *Session) ApproveAndClose() { s.decide(StatusApproved) }

// RejectAndClose rejects the open report and closes the session.
func (s *Session) RejectAndClose() { s.decide(StatusRejected) }

func (s *Session) decide(status Status) {
	if !s.open {
		return
	}
	s.store.SetStatus(s.openID, status)
	s.Close()
}
