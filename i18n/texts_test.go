package i18n

import (
	"testing"

	"DVBot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range english {
		_, ok := amharic[key]
		assert.True(t, ok, "amharic is missing %q", key)
	}
	for key := range amharic {
		_, ok := english[key]
		assert.True(t, ok, "english is missing %q", key)
	}
}

func TestText(t *testing.T) {
	texts := New()

	assert.Equal(t, "Male", texts.Text(model.LanguageEnglish, KeyMale))
	assert.Equal(t, "ወንድ", texts.Text(model.LanguageAmharic, KeyMale))
	assert.Equal(t, "Enter the full name of child 2:", texts.Text(model.LanguageEnglish, KeyAskChildName, 2))
	assert.Equal(t, "የልጅ 3 ሙሉ ስም ያስገቡ፦", texts.Text(model.LanguageAmharic, KeyAskChildName, 3))
	assert.Equal(t, MissingText, texts.Text(model.LanguageEnglish, "no_such_key"))
	assert.Equal(t, "Male", texts.Text(model.Language("fr"), KeyMale))
}

func TestMatchesEitherLanguage(t *testing.T) {
	texts := New()

	assert.True(t, texts.Matches("Yes", KeyYes))
	assert.True(t, texts.Matches("አዎ", KeyYes))
	assert.True(t, texts.Matches("  Yes ", KeyYes))
	assert.False(t, texts.Matches("yes please", KeyYes))
	assert.False(t, texts.Matches("", KeyYes))

	key, ok := texts.MatchKey("✏️ አስተካክል", KeyBtnConfirm, KeyBtnEdit)
	require.True(t, ok)
	assert.Equal(t, KeyBtnEdit, key)
}

func TestParseLabels(t *testing.T) {
	texts := New()

	g, ok := texts.ParseGender("ሴት")
	require.True(t, ok)
	assert.Equal(t, model.GenderFemale, g)

	_, ok = texts.ParseGender("Robot")
	assert.False(t, ok)

	m, ok := texts.ParseMaritalStatus("Married")
	require.True(t, ok)
	assert.Equal(t, model.MaritalMarried, m)

	m, ok = texts.ParseMaritalStatus("የተፋታ")
	require.True(t, ok)
	assert.Equal(t, model.MaritalDivorced, m)
}

func TestDeriveSpouseGenderIsInvolution(t *testing.T) {
	texts := New()

	for _, lang := range model.Languages {
		for _, g := range []model.Gender{model.GenderMale, model.GenderFemale} {
			spouse := texts.DeriveSpouseGender(texts.GenderLabel(lang, g))
			assert.Equal(t, g.Opposite(), spouse, "lang %s", lang)

			back := texts.DeriveSpouseGender(texts.GenderLabel(lang, spouse))
			assert.Equal(t, g, back, "lang %s", lang)
		}
	}
}

func TestDeriveSpouseGenderUnknown(t *testing.T) {
	texts := New()

	assert.Equal(t, model.GenderUndetermined, texts.DeriveSpouseGender("Other"))
	assert.Equal(t, model.GenderUndetermined, texts.DeriveSpouseGender(""))
	assert.Equal(t, "Unknown", texts.GenderLabel(model.LanguageEnglish, model.GenderUndetermined))
}
