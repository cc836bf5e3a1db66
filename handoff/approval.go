package handoff

import (
	"fmt"
	"strconv"
	"strings"

	"DVBot/model"
)

const (
	ApprovePrefix = "approve_"
	DoneMarker    = "✅ DONE"
)

// ApprovalData is the callback data of the Approve button for a requester.
func ApprovalData(requesterID int64) string {
	return ApprovePrefix + strconv.FormatInt(requesterID, 10)
}

// ParseApproval extracts the requester id from Approve callback data.
func ParseApproval(data string) (int64, error) {
	raw, ok := strings.CutPrefix(data, ApprovePrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrBadCallbackData, data)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrBadCallbackData, data)
	}
	return id, nil
}

// MarkDone appends the completion marker to a caption once, cutting the
// caption when the marker would push it past CaptionLimit.
func MarkDone(caption string) (string, bool) {
	if strings.HasSuffix(caption, DoneMarker) {
		return caption, false
	}
	if caption == "" {
		return DoneMarker, true
	}
	suffix := "\n\n" + DoneMarker
	return truncate(caption, CaptionLimit-captionLen(suffix)) + suffix, true
}
