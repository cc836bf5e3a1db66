package form

import (
	"context"
	"fmt"

	"DVBot/model"

	"github.com/looplab/fsm"
)

func eventTo(s model.State) string {
	return "to_" + string(s)
}

func edge(to model.State, from ...model.State) fsm.EventDesc {
	src := make([]string, len(from))
	for i, s := range from {
		src[i] = string(s)
	}
	return fsm.EventDesc{Name: eventTo(to), Src: src, Dst: string(to)}
}

// graph declares every allowed state change. Re-prompts keep the state and
// never consult it.
var graph = fsm.Events{
	edge(model.StateChoosingLanguage, model.States...),
	edge(model.StateMainMenu, model.StateChoosingLanguage),
	edge(model.StateFirstName, model.StateMainMenu, model.StateReviewInfo),
	edge(model.StateLastName, model.StateFirstName),
	edge(model.StateGender, model.StateLastName),
	edge(model.StateMaritalStatus, model.StateGender),
	edge(model.StateSpouseName, model.StateMaritalStatus),
	edge(model.StateSpousePhoto, model.StateSpouseName),
	edge(model.StateHasChildren, model.StateMaritalStatus, model.StateSpousePhoto),
	edge(model.StateChildrenCount, model.StateHasChildren),
	edge(model.StateChildName, model.StateChildrenCount, model.StateChildPhoto),
	edge(model.StateChildGender, model.StateChildName),
	edge(model.StateChildPhoto, model.StateChildGender),
	edge(model.StateMainPhoto, model.StateHasChildren, model.StateChildPhoto),
	edge(model.StateReviewInfo, model.StateMainPhoto),
	edge(model.StatePaymentUpload, model.StateReviewInfo),
	edge(model.StateAwaitingApproval, model.StatePaymentUpload),
}

// CanTransition reports whether the form may move from one state to another.
// Staying in the same state is always allowed.
func CanTransition(from, to model.State) bool {
	if from == to {
		return from.Valid()
	}
	return fsm.NewFSM(string(from), graph, nil).Can(eventTo(to))
}

func advance(ctx context.Context, from, to model.State) error {
	if from == to {
		return nil
	}
	f := fsm.NewFSM(string(from), graph, nil)
	if err := f.Event(ctx, eventTo(to)); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", model.ErrIllegalTransition, from, to, err)
	}
	return nil
}
