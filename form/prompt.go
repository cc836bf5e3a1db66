package form

import (
	"strings"

	"DVBot/i18n"
	"DVBot/model"
)

// prompt is the message that asks for the input of the session's current state.
func (m *Machine) prompt(s *model.Session) Reply {
	lang := s.Language
	t := func(key string, args ...any) string { return m.texts.Text(lang, key, args...) }
	ask := func(key string, args ...any) Reply {
		return Reply{Text: t(key, args...), RemoveKeyboard: true}
	}
	index := 0
	if s.Loop != nil {
		index = s.Loop.Index
	}
	genders := [][]string{{t(i18n.KeyMale), t(i18n.KeyFemale)}}

	switch s.State {
	case model.StateChoosingLanguage:
		return Reply{
			Text: m.texts.Text(model.LanguageEnglish, i18n.KeyWelcome) + "\n\n" +
				m.texts.Text(model.LanguageAmharic, i18n.KeyWelcome),
			LanguagePicker: true,
		}
	case model.StateMainMenu:
		return Reply{Text: t(i18n.KeyMainMenu), Buttons: [][]string{
			{t(i18n.KeyBtnStart)},
			{t(i18n.KeyBtnPrice), t(i18n.KeyBtnHelp)},
		}}
	case model.StateFirstName:
		return ask(i18n.KeyAskFirstName)
	case model.StateLastName:
		return ask(i18n.KeyAskLastName)
	case model.StateGender:
		return Reply{Text: t(i18n.KeyAskGender), Buttons: genders}
	case model.StateMaritalStatus:
		return Reply{Text: t(i18n.KeyAskMarital), Buttons: [][]string{
			{t(i18n.KeySingle), t(i18n.KeyMarried)},
			{t(i18n.KeyDivorced), t(i18n.KeyWidowed)},
		}}
	case model.StateSpouseName:
		return ask(i18n.KeyAskSpouseName)
	case model.StateSpousePhoto:
		return ask(i18n.KeyAskSpousePhoto)
	case model.StateHasChildren:
		return Reply{Text: t(i18n.KeyAskHasChildren), Buttons: [][]string{{t(i18n.KeyYes), t(i18n.KeyNo)}}}
	case model.StateChildrenCount:
		return ask(i18n.KeyAskChildCount)
	case model.StateChildName:
		return ask(i18n.KeyAskChildName, index)
	case model.StateChildGender:
		return Reply{Text: t(i18n.KeyAskChildGender, index), Buttons: genders}
	case model.StateChildPhoto:
		return ask(i18n.KeyAskChildPhoto, index)
	case model.StateMainPhoto:
		return ask(i18n.KeyAskMainPhoto)
	case model.StateReviewInfo:
		return Reply{Text: m.Review(s), Buttons: [][]string{
			{t(i18n.KeyBtnConfirm)},
			{t(i18n.KeyBtnEdit)},
		}}
	case model.StatePaymentUpload:
		return ask(i18n.KeyPaymentMsg)
	case model.StateAwaitingApproval:
		return ask(i18n.KeyWaitApproval)
	}
	return Reply{Text: t(i18n.KeyMainMenu)}
}

// Review renders the dossier for the applicant to confirm.
func (m *Machine) Review(s *model.Session) string {
	lang := s.Language
	d := s.Dossier
	t := func(key string, args ...any) string { return m.texts.Text(lang, key, args...) }

	var b strings.Builder
	b.WriteString(t(i18n.KeyReviewTitle))
	b.WriteString("\n\n")
	b.WriteString(t(i18n.KeyReviewName, d.Applicant.FirstName, d.Applicant.LastName))
	b.WriteString("\n")
	b.WriteString(t(i18n.KeyReviewGender, m.texts.GenderLabel(lang, d.Applicant.Gender)))
	b.WriteString("\n")
	b.WriteString(t(i18n.KeyReviewStatus, m.texts.MaritalStatusLabel(lang, d.Applicant.MaritalStatus)))
	if d.Spouse != nil {
		b.WriteString("\n")
		b.WriteString(t(i18n.KeyReviewSpouse, d.Spouse.Name))
	}
	for i, c := range d.Children {
		b.WriteString("\n")
		b.WriteString(t(i18n.KeyReviewChild, i+1, c.Name, m.texts.GenderLabel(lang, c.Gender)))
	}
	b.WriteString("\n\n")
	b.WriteString(t(i18n.KeyReviewPhoto))
	return b.String()
}
