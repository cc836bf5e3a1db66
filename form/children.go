package form

import (
	"fmt"

	"DVBot/model"
)

// enterChildLoop starts the children sub-flow for count children.
func enterChildLoop(sess *model.Session, count int) {
	sess.Loop = &model.ChildLoop{Target: count, Index: 1}
	sess.Dossier.Children = nil
}

// commitChild stores the drafted child with its photo and returns the state
// the loop continues in.
func commitChild(sess *model.Session, photoID string) (model.State, error) {
	loop := sess.Loop
	sess.Dossier.Children = append(sess.Dossier.Children, model.Child{
		Name:    loop.Draft.Name,
		Gender:  loop.Draft.Gender,
		PhotoID: photoID,
	})
	loop.Draft = model.ChildDraft{}

	if len(sess.Dossier.Children) != loop.Index {
		return "", fmt.Errorf("%w: %d children committed at index %d",
			model.ErrCorruptSession, len(sess.Dossier.Children), loop.Index)
	}

	if loop.Index < loop.Target {
		loop.Index++
		return model.StateChildName, nil
	}
	sess.Loop = nil
	return model.StateMainPhoto, nil
}

func checkLoop(sess *model.Session) error {
	l := sess.Loop
	if l == nil || l.Index < 1 || l.Index > l.Target {
		return fmt.Errorf("%w: child loop missing or out of range in %s", model.ErrCorruptSession, sess.State)
	}
	return nil
}
