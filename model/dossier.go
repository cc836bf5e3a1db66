package model

// Language is a supported conversation language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageAmharic Language = "am"
)

// Languages lists the supported languages, English first.
var Languages = []Language{LanguageEnglish, LanguageAmharic}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageAmharic
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	// GenderUndetermined is stored when a gender cannot be derived.
	GenderUndetermined Gender = "undetermined"
)

// Opposite returns the other gender, or GenderUndetermined for anything
// that is neither male nor female.
func (g Gender) Opposite() Gender {
	switch g {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	default:
		return GenderUndetermined
	}
}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

type Applicant struct {
	FirstName     string        `json:"firstName,omitempty"`
	LastName      string        `json:"lastName,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	MaritalStatus MaritalStatus `json:"maritalStatus,omitempty"`
}

type Spouse struct {
	Name    string `json:"name"`
	Gender  Gender `json:"gender"` // derived from the applicant
	PhotoID string `json:"photoID,omitempty"`
}

type Child struct {
	Name    string `json:"name"`
	Gender  Gender `json:"gender"`
	PhotoID string `json:"photoID"`
}

// ChildDraft holds the part of a child collected before its photo arrives.
type ChildDraft struct {
	Name   string `json:"name,omitempty"`
	Gender Gender `json:"gender,omitempty"`
}

// ChildLoop is the bookkeeping of the children sub-flow. Index is 1-based
// and stays within [1, Target] while looping.
type ChildLoop struct {
	Target int        `json:"target"`
	Index  int        `json:"index"`
	Draft  ChildDraft `json:"draft"`
}

// Dossier is the application data collected by the form.
type Dossier struct {
	Applicant      Applicant `json:"applicant"`
	Spouse         *Spouse   `json:"spouse,omitempty"`
	Children       []Child   `json:"children,omitempty"`
	MainPhotoID    string    `json:"mainPhotoID,omitempty"`
	PaymentPhotoID string    `json:"paymentPhotoID,omitempty"`
}
