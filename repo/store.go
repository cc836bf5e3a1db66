package repo

import (
	"context"
	"time"

	"DVBot/model"
)

// SessionStore keeps one session per conversation.
type SessionStore interface {
	// GetSession returns model.ErrSessionNotFound for unknown users.
	GetSession(ctx context.Context, userID int64) (*model.Session, error)
	SaveSession(ctx context.Context, sess *model.Session) error
	DeleteSession(ctx context.Context, userID int64) error
}

// SubmissionStore records dossiers handed to the reviewer, latest per requester.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub *model.Submission) error
	// ReadSubmission returns model.ErrSubmissionNotFound for unknown requesters.
	ReadSubmission(ctx context.Context, requesterID int64) (*model.Submission, error)
	// ApproveSubmission marks the requester's submission approved. Approving
	// twice keeps the first approval time.
	ApproveSubmission(ctx context.Context, requesterID int64, at time.Time) (*model.Submission, error)
}

// Store is a backend holding both sessions and submissions.
type Store interface {
	SessionStore
	SubmissionStore
}
