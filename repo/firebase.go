package repo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"DVBot/model"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

const (
	sessionsPath    = "sessions"
	submissionsPath = "submissions"
)

// FirebaseConnector struct to hold Firebase client and database reference
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseConnector creates a new Firebase connector
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	// Load the service account key file
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GetSession reads a conversation's session from Firebase
func (fc *FirebaseConnector) GetSession(ctx context.Context, userID int64) (*model.Session, error) {
	ref := fc.client.NewRef(sessionsPath).Child(userKey(userID))
	var sess model.Session
	if err := ref.Get(ctx, &sess); err != nil {
		return nil, fmt.Errorf("error reading session: %w", err)
	}
	// absent nodes decode as null
	if sess.State == "" {
		return nil, model.ErrSessionNotFound
	}
	return &sess, nil
}

// SaveSession overwrites a conversation's session in Firebase
func (fc *FirebaseConnector) SaveSession(ctx context.Context, sess *model.Session) error {
	ref := fc.client.NewRef(sessionsPath).Child(userKey(sess.UserID))
	if err := ref.Set(ctx, sess); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// DeleteSession deletes a conversation's session from Firebase
func (fc *FirebaseConnector) DeleteSession(ctx context.Context, userID int64) error {
	ref := fc.client.NewRef(sessionsPath).Child(userKey(userID))
	if err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// CreateSubmission stores the requester's latest submission
func (fc *FirebaseConnector) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	ref := fc.client.NewRef(submissionsPath).Child(userKey(sub.RequesterID))
	if err := ref.Set(ctx, sub); err != nil {
		return fmt.Errorf("error creating submission: %w", err)
	}
	return nil
}

// ReadSubmission reads the requester's latest submission
func (fc *FirebaseConnector) ReadSubmission(ctx context.Context, requesterID int64) (*model.Submission, error) {
	ref := fc.client.NewRef(submissionsPath).Child(userKey(requesterID))
	var sub model.Submission
	if err := ref.Get(ctx, &sub); err != nil {
		return nil, fmt.Errorf("error reading submission: %w", err)
	}
	if sub.ID == "" {
		return nil, model.ErrSubmissionNotFound
	}
	return &sub, nil
}

// ApproveSubmission marks the requester's latest submission approved
func (fc *FirebaseConnector) ApproveSubmission(ctx context.Context, requesterID int64, at time.Time) (*model.Submission, error) {
	sub, err := fc.ReadSubmission(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if sub.Approved {
		return sub, nil
	}

	ref := fc.client.NewRef(submissionsPath).Child(userKey(requesterID))
	err = ref.Update(ctx, map[string]interface{}{
		"approved":   true,
		"approvedAt": at,
	})
	if err != nil {
		return nil, fmt.Errorf("error approving submission: %w", err)
	}
	sub.Approved = true
	sub.ApprovedAt = at
	return sub, nil
}

// InitializeFirebase initializes the Firebase connector from the service
// account key path and database URL
func InitializeFirebase(ctx context.Context, serviceAccountKeyPath, databaseURL string) (*FirebaseConnector, error) {
	if serviceAccountKeyPath == "" {
		return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY_PATH environment variable not set")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL environment variable not set")
	}

	firebaseConnector, err := NewFirebaseConnector(ctx, serviceAccountKeyPath, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating Firebase connector: %w", err)
	}

	return firebaseConnector, nil
}
