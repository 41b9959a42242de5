package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// Config tunes the engine. Batch sizes bound the work of a single sweep so
// the notifier is never flooded; the remainder is picked up next sweep.
type Config struct {
	Policy        domain.Policy
	InitialBatch  int
	FollowUpBatch int
	ExpiryBatch   int
	SlotBatch     int
	NotifyTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Policy:        domain.DefaultPolicy(),
		InitialBatch:  10,
		FollowUpBatch: 5,
		ExpiryBatch:   5,
		SlotBatch:     5,
		NotifyTimeout: 10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Policy.FollowUpAfter <= 0 {
		c.Policy.FollowUpAfter = defaults.Policy.FollowUpAfter
	}
	if c.Policy.ExpireAfter <= 0 {
		c.Policy.ExpireAfter = defaults.Policy.ExpireAfter
	}
	if c.Policy.ProvisionalSlotTTL <= 0 {
		c.Policy.ProvisionalSlotTTL = defaults.Policy.ProvisionalSlotTTL
	}
	if c.InitialBatch <= 0 {
		c.InitialBatch = defaults.InitialBatch
	}
	if c.FollowUpBatch <= 0 {
		c.FollowUpBatch = defaults.FollowUpBatch
	}
	if c.ExpiryBatch <= 0 {
		c.ExpiryBatch = defaults.ExpiryBatch
	}
	if c.SlotBatch <= 0 {
		c.SlotBatch = defaults.SlotBatch
	}
	if c.NotifyTimeout <= 0 {
		c.NotifyTimeout = defaults.NotifyTimeout
	}
	return c
}

// Deps are the collaborators of the engine. Clock and Logger are optional.
type Deps struct {
	Prospects port.ProspectStore
	Slots     port.SlotStore
	Messages  port.MessageLog
	Notifier  port.Notifier
	Clock     clock.Clock
	Logger    *slog.Logger
}

// Engine implements port.OutreachUseCase. It is the only writer of
// prospects, slots and message records.
type Engine struct {
	prospects port.ProspectStore
	messages  port.MessageLog
	notifier  port.Notifier
	clock     clock.Clock
	logger    *slog.Logger
	cfg       Config

	slots    *SlotManager
	resolver *ReplacementResolver

	mu         sync.RWMutex
	lastSweep  *port.SweepReport
	unresolved atomic.Int64
	violations atomic.Int64
}

var _ port.OutreachUseCase = (*Engine)(nil)

// signalRetries bounds how often an inbound signal re-reads a prospect
// after losing a compare-and-set race against a sweep.
const signalRetries = 3

// NewEngine wires an engine from deps.
func NewEngine(deps Deps, cfg Config) *Engine {
	if deps.Clock == nil {
		deps.Clock = clock.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	logger := deps.Logger.With(slog.String("component", "outreach"))

	e := &Engine{
		prospects: deps.Prospects,
		messages:  deps.Messages,
		notifier:  deps.Notifier,
		clock:     deps.Clock,
		logger:    logger,
		cfg:       cfg,
		slots:     NewSlotManager(deps.Slots, deps.Clock, logger),
	}
	e.resolver = &ReplacementResolver{
		prospects: deps.Prospects,
		slots:     e.slots,
		contacter: e,
		clock:     deps.Clock,
		slotTTL:   cfg.Policy.ProvisionalSlotTTL,
		logger:    logger,
	}
	return e
}

// Discover registers a new pending prospect.
func (e *Engine) Discover(ctx context.Context, req port.NewProspect) (*domain.Prospect, error) {
	p := domain.Prospect{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		City:     strings.TrimSpace(req.City),
		Country:  strings.TrimSpace(req.Country),
		Category: strings.TrimSpace(req.Category),
		Stage:    domain.StagePending,
	}
	var missing []string
	for _, f := range [][2]string{{"name", p.Name}, {"email", p.Email}, {"city", p.City}, {"country", p.Country}} {
		if f[1] == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", port.ErrInvalidProspect, strings.Join(missing, ", "))
	}
	if err := e.prospects.CreateProspect(ctx, &p); err != nil {
		return nil, fmt.Errorf("create prospect: %w", err)
	}
	e.logger.Info("prospect discovered", slog.Int64("prospect_id", p.ID), slog.String("location", p.Location().Key()))
	return &p, nil
}

// AssignSlot gives the prospect a hold on the slot of its home location:
// paid when it already confirmed, provisional otherwise.
func (e *Engine) AssignSlot(ctx context.Context, prospectID int64) (*domain.Slot, error) {
	p, err := e.load(ctx, prospectID)
	if err != nil {
		return nil, err
	}
	if p.OptedOut || p.Stage == domain.StageExpired {
		return nil, fmt.Errorf("%w: prospect %d is %s", port.ErrTerminalProspect, p.ID, p.Stage)
	}
	if held, err := e.slots.HeldBy(ctx, p.ID); err != nil || held != nil {
		return held, err
	}

	var slot *domain.Slot
	if p.Confirmed {
		slot, err = e.slots.AssignPaid(ctx, p.Location(), p.ID)
	} else {
		slot, err = e.slots.AssignProvisional(ctx, p.Location(), p.ID, e.clock.Now().Add(e.cfg.Policy.ProvisionalSlotTTL), nil)
	}
	if err != nil {
		if errors.Is(err, port.ErrSlotOccupied) {
			e.violations.Add(1)
		}
		return nil, err
	}

	p.SlotAssigned = true
	p.SlotExpiresAt = copyTime(slot.ExpiresAt)
	if err = e.prospects.UpdateProspect(ctx, p); err != nil {
		return nil, fmt.Errorf("update prospect %d: %w", p.ID, err)
	}
	return slot, nil
}

// Prospect returns a prospect with its slot and message history.
func (e *Engine) Prospect(ctx context.Context, prospectID int64) (*port.ProspectDetails, error) {
	p, err := e.load(ctx, prospectID)
	if err != nil {
		return nil, err
	}
	slot, err := e.slots.HeldBy(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	messages, err := e.messages.ListMessages(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &port.ProspectDetails{Prospect: *p, Slot: slot, Messages: messages}, nil
}

// Status returns the monitoring snapshot.
func (e *Engine) Status(ctx context.Context) (*port.Status, error) {
	stages, err := e.prospects.CountByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prospects: %w", err)
	}
	slots, err := e.slots.Held(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	st := &port.Status{
		Stages:     stages,
		Slots:      slots,
		Unresolved: e.unresolved.Load(),
		Violations: e.violations.Load(),
	}
	e.mu.RLock()
	if e.lastSweep != nil {
		report := *e.lastSweep
		st.LastSweep = &report
		st.LastSweepAt = &report.StartedAt
	}
	e.mu.RUnlock()
	return st, nil
}

func (e *Engine) load(ctx context.Context, id int64) (*domain.Prospect, error) {
	p, err := e.prospects.GetProspect(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get prospect %d: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("prospect %d: %w", id, port.ErrNotFound)
	}
	return p, nil
}

// dispatch sends kind to p at most once. The message record is reserved
// before the notifier is called; a reservation that is delivered or in
// doubt is never sent again, a failed one is retried.
func (e *Engine) dispatch(ctx context.Context, p domain.Prospect, kind domain.MessageKind) error {
	acquired, err := e.messages.AcquireMessage(ctx, p.ID, kind, e.clock.Now())
	if err != nil {
		return fmt.Errorf("acquire %s message for prospect %d: %w", kind, p.ID, err)
	}
	if !acquired {
		e.logger.Debug("message already dispatched", slog.Int64("prospect_id", p.ID), slog.String("kind", string(kind)))
		return nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, e.cfg.NotifyTimeout)
	sendErr := e.notifier.Send(sendCtx, p, kind)
	cancel()

	outcome := domain.OutcomeDelivered
	if sendErr != nil {
		outcome = domain.OutcomeFailed
	}
	// The outcome must be stored even when the sweep deadline fired
	// during the send.
	if err = e.messages.CompleteMessage(context.WithoutCancel(ctx), p.ID, kind, outcome, e.clock.Now()); err != nil {
		return fmt.Errorf("record %s outcome for prospect %d: %w", kind, p.ID, err)
	}
	if sendErr != nil {
		return fmt.Errorf("%w: %s to prospect %d: %v", port.ErrDeliveryFailed, kind, p.ID, sendErr)
	}
	e.logger.Info("message delivered", slog.Int64("prospect_id", p.ID), slog.String("kind", string(kind)))
	return nil
}

// advance dispatches the message of t and commits the stage change.
func (e *Engine) advance(ctx context.Context, p domain.Prospect, t domain.Transition) (domain.Prospect, error) {
	if t.Message != "" {
		if err := e.dispatch(ctx, p, t.Message); err != nil {
			return p, err
		}
	}
	if err := t.Apply(&p, e.clock.Now()); err != nil {
		return p, err
	}
	if err := e.prospects.UpdateProspect(ctx, &p); err != nil {
		return p, fmt.Errorf("update prospect %d to %s: %w", p.ID, t.To, err)
	}
	e.logger.Info("prospect advanced",
		slog.Int64("prospect_id", p.ID),
		slog.String("from", string(t.From)),
		slog.String("to", string(t.To)))
	return p, nil
}

// contact moves a replacement candidate to InitialSent and records the
// provisional slot it was handed. Candidates that were already contacted
// only get their slot fields updated.
func (e *Engine) contact(ctx context.Context, p domain.Prospect, slot *domain.Slot) (domain.Prospect, error) {
	if p.Stage != domain.StagePending && (slot == nil || p.SlotAssigned) {
		return p, nil
	}
	if p.Stage == domain.StagePending {
		if err := e.dispatch(ctx, p, domain.MessageInitial); err != nil {
			return p, err
		}
		t, _ := domain.Next(p, e.clock.Now(), e.cfg.Policy)
		if err := t.Apply(&p, e.clock.Now()); err != nil {
			return p, err
		}
	}
	if slot != nil {
		p.SlotAssigned = true
		p.SlotExpiresAt = copyTime(slot.ExpiresAt)
	}
	if err := e.prospects.UpdateProspect(ctx, &p); err != nil {
		return p, fmt.Errorf("update replacement %d: %w", p.ID, err)
	}
	return p, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
