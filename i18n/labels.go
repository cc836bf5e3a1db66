package i18n

import (
	"strings"

	"DVBot/model"
)

var genderKeys = map[model.Gender]string{
	model.GenderMale:         KeyMale,
	model.GenderFemale:       KeyFemale,
	model.GenderUndetermined: KeyUndetermined,
}

var maritalKeys = map[model.MaritalStatus]string{
	model.MaritalSingle:   KeySingle,
	model.MaritalMarried:  KeyMarried,
	model.MaritalDivorced: KeyDivorced,
	model.MaritalWidowed:  KeyWidowed,
}

// Matches reports whether label equals the text of key in any supported
// language. Keyboards sent before a language switch stay usable.
func (t *Texts) Matches(label, key string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	for _, lang := range model.Languages {
		if t.Text(lang, key) == label {
			return true
		}
	}
	return false
}

// MatchKey returns the first of keys whose text equals label in any language.
func (t *Texts) MatchKey(label string, keys ...string) (string, bool) {
	for _, key := range keys {
		if t.Matches(label, key) {
			return key, true
		}
	}
	return "", false
}

// ParseGender maps a male/female button label in either language to its
// canonical value.
func (t *Texts) ParseGender(label string) (model.Gender, bool) {
	for _, g := range []model.Gender{model.GenderMale, model.GenderFemale} {
		if t.Matches(label, genderKeys[g]) {
			return g, true
		}
	}
	return "", false
}

// ParseMaritalStatus maps a marital status button label in either language
// to its canonical value.
func (t *Texts) ParseMaritalStatus(label string) (model.MaritalStatus, bool) {
	for _, m := range []model.MaritalStatus{model.MaritalSingle, model.MaritalMarried, model.MaritalDivorced, model.MaritalWidowed} {
		if t.Matches(label, maritalKeys[m]) {
			return m, true
		}
	}
	return "", false
}

func (t *Texts) GenderLabel(lang model.Language, g model.Gender) string {
	key, ok := genderKeys[g]
	if !ok {
		key = KeyUndetermined
	}
	return t.Text(lang, key)
}

func (t *Texts) MaritalStatusLabel(lang model.Language, m model.MaritalStatus) string {
	key, ok := maritalKeys[m]
	if !ok {
		return string(m)
	}
	return t.Text(lang, key)
}

// DeriveSpouseGender returns the gender opposite to the applicant's gender
// label. Labels in either language are recognized; anything else yields
// model.GenderUndetermined.
func (t *Texts) DeriveSpouseGender(applicantLabel string) model.Gender {
	g, ok := t.ParseGender(applicantLabel)
	if !ok {
		return model.GenderUndetermined
	}
	return g.Opposite()
}
