package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned when a stage change is not an edge of
// the funnel.
var ErrInvalidTransition = errors.New("invalid stage transition")

// Policy holds the elapsed-time thresholds of the funnel.
type Policy struct {
	FollowUpAfter      time.Duration
	ExpireAfter        time.Duration
	ProvisionalSlotTTL time.Duration
}

const week = 7 * 24 * time.Hour

// DefaultPolicy waits one week at every step.
func DefaultPolicy() Policy {
	return Policy{
		FollowUpAfter:      week,
		ExpireAfter:        week,
		ProvisionalSlotTTL: week,
	}
}

// Effect is the side effect that accompanies a transition.
type Effect string

const (
	EffectNone     Effect = ""
	EffectContact  Effect = "contact"
	EffectFollowUp Effect = "follow_up"
	EffectReplace  Effect = "replace"
	EffectConfirm  Effect = "confirm"
	EffectOptOut   Effect = "opt_out"
)

// Transition is one edge taken by a prospect together with the message it
// dispatches, if any.
type Transition struct {
	From    Stage
	To      Stage
	Effect  Effect
	Message MessageKind
}

var edges = map[Stage][]Stage{
	StagePending:      {StageInitialSent, StageConfirmed, StageOptedOut},
	StageInitialSent:  {StageFollowUpSent, StageConfirmed, StageOptedOut},
	StageFollowUpSent: {StageExpired, StageConfirmed, StageOptedOut},
}

// CanTransition reports whether from -> to is an edge of the funnel.
func CanTransition(from, to Stage) bool {
	for _, s := range edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Next returns the automatic transition due for p at now, if any. Frozen
// and terminal prospects never have one.
func Next(p Prospect, now time.Time, policy Policy) (Transition, bool) {
	if p.Frozen() || p.Stage.Terminal() {
		return Transition{}, false
	}
	switch p.Stage {
	case StagePending:
		return Transition{From: StagePending, To: StageInitialSent, Effect: EffectContact, Message: MessageInitial}, true
	case StageInitialSent:
		if p.InitialContactedAt != nil && now.Sub(*p.InitialContactedAt) >= policy.FollowUpAfter {
			return Transition{From: StageInitialSent, To: StageFollowUpSent, Effect: EffectFollowUp, Message: MessageFollowUp}, true
		}
	case StageFollowUpSent:
		if !p.ReplacementOffered && p.FollowUpContactedAt != nil && now.Sub(*p.FollowUpContactedAt) >= policy.ExpireAfter {
			return Transition{From: StageFollowUpSent, To: StageExpired, Effect: EffectReplace, Message: MessageReplacementNotice}, true
		}
	}
	return Transition{}, false
}

// SignalTransition returns the transition an inbound confirm or opt-out
// signal causes. changed is false when p already sits in the target stage,
// which makes repeated signals no-ops.
func SignalTransition(p Prospect, to Stage) (t Transition, changed bool, err error) {
	var effect Effect
	switch to {
	case StageConfirmed:
		effect = EffectConfirm
	case StageOptedOut:
		effect = EffectOptOut
	default:
		return Transition{}, false, fmt.Errorf("%w: %s is not a signal stage", ErrInvalidTransition, to)
	}
	if p.Stage == to {
		return Transition{}, false, nil
	}
	if p.Frozen() || !CanTransition(p.Stage, to) {
		return Transition{}, false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Stage, to)
	}
	return Transition{From: p.Stage, To: to, Effect: effect}, true, nil
}

// Apply moves p along t and stamps the fields that belong to the target
// stage.
func (t Transition) Apply(p *Prospect, now time.Time) error {
	if p.Stage != t.From || !CanTransition(t.From, t.To) {
		return fmt.Errorf("%w: prospect %d is %s, want %s -> %s", ErrInvalidTransition, p.ID, p.Stage, t.From, t.To)
	}
	at := now
	switch t.To {
	case StageInitialSent:
		p.InitialContactedAt = &at
	case StageFollowUpSent:
		if p.InitialContactedAt == nil {
			return fmt.Errorf("%w: prospect %d was never contacted", ErrInvalidTransition, p.ID)
		}
		p.FollowUpContactedAt = &at
	case StageExpired:
		p.ReplacementOffered = true
		p.SlotAssigned = false
		p.SlotExpiresAt = nil
	case StageConfirmed:
		p.Confirmed = true
		p.ConfirmedAt = &at
		p.SlotExpiresAt = nil
	case StageOptedOut:
		p.OptedOut = true
		p.OptedOutAt = &at
		p.SlotAssigned = false
		p.SlotExpiresAt = nil
	}
	p.Stage = t.To
	return nil
}
