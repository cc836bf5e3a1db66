package model

// State names one step of the application form.
type State string

const (
	StateChoosingLanguage State = "choosing_language"
	StateMainMenu         State = "main_menu"

	// Main applicant
	StateFirstName     State = "first_name"
	StateLastName      State = "last_name"
	StateGender        State = "gender"
	StateMaritalStatus State = "marital_status"

	// Spouse, only when married. Spouse gender is derived, never asked.
	StateSpouseName  State = "spouse_name"
	StateSpousePhoto State = "spouse_photo"

	// Children loop
	StateHasChildren   State = "has_children"
	StateChildrenCount State = "children_count"
	StateChildName     State = "child_name"
	StateChildGender   State = "child_gender"
	StateChildPhoto    State = "child_photo"

	// Final steps
	StateMainPhoto        State = "main_photo"
	StateReviewInfo       State = "review_info"
	StatePaymentUpload    State = "payment_upload"
	StateAwaitingApproval State = "awaiting_approval"
)

// States lists every declared state in flow order.
var States = []State{
	StateChoosingLanguage,
	StateMainMenu,
	StateFirstName,
	StateLastName,
	StateGender,
	StateMaritalStatus,
	StateSpouseName,
	StateSpousePhoto,
	StateHasChildren,
	StateChildrenCount,
	StateChildName,
	StateChildGender,
	StateChildPhoto,
	StateMainPhoto,
	StateReviewInfo,
	StatePaymentUpload,
	StateAwaitingApproval,
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	for _, st := range States {
		if st == s {
			return true
		}
	}
	return false
}

// InChildLoop reports whether s belongs to the children sub-flow that carries loop data.
func (s State) InChildLoop() bool {
	switch s {
	case StateChildName, StateChildGender, StateChildPhoto:
		return true
	}
	return false
}

// WantsPhoto reports whether s only accepts a photo attachment.
func (s State) WantsPhoto() bool {
	switch s {
	case StateSpousePhoto, StateChildPhoto, StateMainPhoto, StatePaymentUpload:
		return true
	}
	return false
}
