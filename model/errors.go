package model

import "errors"

var (
	ErrSessionNotFound    = errors.New("session does not exist")
	ErrSubmissionNotFound = errors.New("submission does not exist")
	ErrIllegalTransition  = errors.New("transition not allowed")
	ErrNoReviewer         = errors.New("reviewer chat is not configured")
	ErrBadCallbackData    = errors.New("malformed callback data")
	ErrCorruptSession     = errors.New("session data is inconsistent")
	ErrForeignApproval    = errors.New("approval outside the reviewer chat")
)
