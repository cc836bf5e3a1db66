package repo

import (
	"context"
	"sync"
	"time"

	"DVBot/model"
)

// MemoryStore keeps sessions and submissions in process memory. Sessions
// are never evicted.
type MemoryStore struct {
	mu          sync.Mutex
	sessions    map[int64]*model.Session
	submissions map[int64]model.Submission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[int64]*model.Session),
		submissions: make(map[int64]model.Submission),
	}
}

func (s *MemoryStore) GetSession(_ context.Context, userID int64) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

func (s *MemoryStore) SaveSession(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.UserID] = sess.Clone()
	return nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}

func (s *MemoryStore) CreateSubmission(_ context.Context, sub *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions[sub.RequesterID] = copySubmission(*sub)
	return nil
}

func (s *MemoryStore) ReadSubmission(_ context.Context, requesterID int64) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[requesterID]
	if !ok {
		return nil, model.ErrSubmissionNotFound
	}
	sub = copySubmission(sub)
	return &sub, nil
}

func (s *MemoryStore) ApproveSubmission(_ context.Context, requesterID int64, at time.Time) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[requesterID]
	if !ok {
		return nil, model.ErrSubmissionNotFound
	}
	if !sub.Approved {
		sub.Approved = true
		sub.ApprovedAt = at
		s.submissions[requesterID] = sub
	}
	sub = copySubmission(sub)
	return &sub, nil
}

func copySubmission(sub model.Submission) model.Submission {
	sub.ChildPhotoIDs = append([]string(nil), sub.ChildPhotoIDs...)
	return sub
}
