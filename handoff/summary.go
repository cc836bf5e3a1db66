package handoff

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"DVBot/i18n"
	"DVBot/model"
)

// CaptionLimit is Telegram's media caption limit in UTF-16 code units.
const CaptionLimit = 1024

const (
	refPrefix = "Ref: "
	ellipsis  = "…"
)

// Summary renders the full reviewer summary for a completed session. Labels
// are always English, whatever language the requester used.
func Summary(texts *i18n.Texts, sess *model.Session, submissionID string) string {
	return summary(texts, sess, submissionID, true)
}

// Caption is the summary shaped to fit a photo caption. Per-child lines are
// dropped first, leaving the count; what still overflows is cut. The Ref
// line comes before any name, so it always survives.
func Caption(texts *i18n.Texts, sess *model.Session, submissionID string) string {
	if s := Summary(texts, sess, submissionID); captionLen(s) <= CaptionLimit {
		return s
	}
	return truncate(summary(texts, sess, submissionID, false), CaptionLimit)
}

func summary(texts *i18n.Texts, sess *model.Session, submissionID string, childLines bool) string {
	lang := model.LanguageEnglish
	d := sess.Dossier

	var b strings.Builder
	b.WriteString("💰 NEW DV CLIENT\n")
	fmt.Fprintf(&b, "User: %s (ID: %d)\n", requesterName(sess), sess.UserID)
	if submissionID != "" {
		fmt.Fprintf(&b, "%s%s\n", refPrefix, submissionID)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "👤 Main: %s %s\n", d.Applicant.FirstName, d.Applicant.LastName)
	fmt.Fprintf(&b, "⚧ %s | %s\n",
		texts.GenderLabel(lang, d.Applicant.Gender),
		texts.MaritalStatusLabel(lang, d.Applicant.MaritalStatus))
	if d.Spouse != nil {
		fmt.Fprintf(&b, "💍 Spouse: %s (%s)\n", d.Spouse.Name, texts.GenderLabel(lang, d.Spouse.Gender))
	}
	if n := len(d.Children); n > 0 {
		fmt.Fprintf(&b, "👶 Children: %d\n", n)
		if childLines {
			for i, c := range d.Children {
				fmt.Fprintf(&b, "   %d. %s (%s)\n", i+1, c.Name, texts.GenderLabel(lang, c.Gender))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// captionRef returns the submission id a caption was rendered for.
func captionRef(caption string) string {
	for _, line := range strings.Split(caption, "\n") {
		if ref, ok := strings.CutPrefix(line, refPrefix); ok {
			return strings.TrimSpace(ref)
		}
	}
	return ""
}

func captionLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// truncate cuts s to at most limit UTF-16 units, marking the cut.
func truncate(s string, limit int) string {
	if captionLen(s) <= limit {
		return s
	}
	budget := limit - captionLen(ellipsis)
	var b strings.Builder
	used := 0
	for _, r := range s {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if used+n > budget {
			break
		}
		b.WriteRune(r)
		used += n
	}
	return b.String() + ellipsis
}

func requesterName(sess *model.Session) string {
	if sess.Username == "" {
		return "(no username)"
	}
	return "@" + sess.Username
}
