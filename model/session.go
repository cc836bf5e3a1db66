package model

import "time"

// Session is the per-conversation record mutated by the form.
type Session struct {
	UserID   int64    `json:"userID"`
	Username string   `json:"username,omitempty"`
	Language Language `json:"language,omitempty"`
	State    State    `json:"state"`
	Dossier  Dossier  `json:"dossier"`

	// Loop is only set while the children sub-flow runs.
	Loop *ChildLoop `json:"loop,omitempty"`

	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}

// NewSession returns a session waiting for a language choice.
func NewSession(userID int64) *Session {
	return &Session{
		UserID: userID,
		State:  StateChoosingLanguage,
	}
}

// Reset wipes the collected data but keeps identity and language.
func (s *Session) Reset() {
	s.Dossier = Dossier{}
	s.Loop = nil
	s.SubmittedAt = time.Time{}
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	if s.Dossier.Spouse != nil {
		sp := *s.Dossier.Spouse
		c.Dossier.Spouse = &sp
	}
	if s.Dossier.Children != nil {
		c.Dossier.Children = append([]Child(nil), s.Dossier.Children...)
	}
	if s.Loop != nil {
		l := *s.Loop
		c.Loop = &l
	}
	return &c
}
