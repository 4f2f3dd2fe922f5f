package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/companion/pkg/domain"
)

// reasons returned by CheckSpaceAllowsProactive when the hard stop is not in effect
const (
	SpaceNoBoundary      = "no_boundary"
	SpaceUserInitiated   = "user_initiated"
	SpaceCooldownExpired = "cooldown_expired"
)

// Manager owns the boundary lifecycle: detection on inbound messages, the
// space hard stop, and violation checks on outbound candidates.
//
// The space boundary is a state machine per user: a space phrase starts a
// hard stop lasting hardStop (24h by default). Any user message during the
// stop stamps userInitiatedAfter, which authorizes proactive sends again
// without lifting the boundary. A retraction phrase lifts it entirely.
type Manager struct {
	store    BoundaryStore
	hardStop time.Duration
	nowFn    func() time.Time
}

// NewManager creates a boundary manager. hardStop <= 0 selects the default 24h.
func NewManager(store BoundaryStore, hardStop time.Duration) *Manager {
	if hardStop <= 0 {
		hardStop = 24 * time.Hour
	}
	return &Manager{store: store, hardStop: hardStop, nowFn: time.Now}
}

// ProcessMessage runs boundary bookkeeping for one inbound user message:
// stamps userInitiatedAfter on a live space boundary, lifts it on a
// retraction phrase, or records a newly detected boundary. Returns nil
// when nothing changed.
func (m *Manager) ProcessMessage(ctx context.Context, userID int64, text string) (*domain.BoundaryEvent, error) {
	if err := m.store.MarkUserInitiated(ctx, userID, m.nowFn()); err != nil {
		return nil, fmt.Errorf("mark user initiated for user %d: %w", userID, err)
	}

	if DetectRetraction(text) {
		lifted, err := m.store.DeactivateSpace(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("deactivate space boundary for user %d: %w", userID, err)
		}
		if lifted {
			lgr.Printf("[INFO] space boundary retracted by user %d", userID)
			return &domain.BoundaryEvent{
				Action: domain.BoundaryRetracted,
				Type:   domain.BoundaryBehavior,
				Value:  "space",
				Hint:   "[BOUNDARY_RETRACTED: space]",
			}, nil
		}
	}

	btype, value, ok := DetectBoundary(text)
	if !ok {
		return nil, nil
	}

	exists, err := m.store.ExistsActive(ctx, userID, btype, value)
	if err != nil {
		return nil, fmt.Errorf("check duplicate boundary for user %d: %w", userID, err)
	}
	if exists {
		return nil, nil
	}

	b := domain.Boundary{UserID: userID, Type: btype, Value: value, Active: true, CreatedAt: m.nowFn()}
	if _, err := m.store.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("save boundary for user %d: %w", userID, err)
	}
	lgr.Printf("[INFO] boundary set for user %d: %s=%s", userID, btype, value)

	return &domain.BoundaryEvent{
		Action: domain.BoundarySet,
		Type:   btype,
		Value:  value,
		Hint:   fmt.Sprintf("[BOUNDARY_SET: %s=%s]", btype, value),
	}, nil
}

// CheckSpaceAllowsProactive is the single authority on the space hard stop.
// Allowed with a reason of no_boundary, user_initiated or cooldown_expired,
// blocked with hard_stop_<H.H>h_remaining otherwise.
func (m *Manager) CheckSpaceAllowsProactive(ctx context.Context, userID int64) (allowed bool, reason string, err error) {
	b, err := m.store.LatestActiveSpace(ctx, userID)
	if err != nil {
		return false, "", fmt.Errorf("load space boundary for user %d: %w", userID, err)
	}
	if b == nil {
		return true, SpaceNoBoundary, nil
	}
	if b.UserInitiatedAfter != nil {
		return true, SpaceUserInitiated, nil
	}
	since := m.nowFn().Sub(b.CreatedAt)
	if since >= m.hardStop {
		return true, SpaceCooldownExpired, nil
	}
	return false, fmt.Sprintf("hard_stop_%.1fh_remaining", (m.hardStop - since).Hours()), nil
}

// CheckMessageViolates scans active topic boundaries against candidate bot
// text. Values of four characters or fewer match whole words only so that a
// boundary like "ex" does not flag "next".
func (m *Manager) CheckMessageViolates(ctx context.Context, userID int64, candidate string) (violates bool, matched string, err error) {
	if candidate == "" {
		return false, "", nil
	}
	topics, err := m.store.ActiveValues(ctx, userID, domain.BoundaryTopic)
	if err != nil {
		return false, "", fmt.Errorf("load topic boundaries for user %d: %w", userID, err)
	}
	lower := strings.ToLower(candidate)
	for _, topic := range topics {
		t := strings.ToLower(topic)
		if len(t) <= 4 {
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(t) + `\b`)
			if err != nil {
				continue
			}
			if re.MatchString(lower) {
				return true, topic, nil
			}
			continue
		}
		if strings.Contains(lower, t) {
			return true, topic, nil
		}
	}
	return false, "", nil
}

// TimingBoundaries returns active timing preference values for the user
func (m *Manager) TimingBoundaries(ctx context.Context, userID int64) ([]string, error) {
	values, err := m.store.ActiveValues(ctx, userID, domain.BoundaryTiming)
	if err != nil {
		return nil, fmt.Errorf("load timing boundaries for user %d: %w", userID, err)
	}
	return values, nil
}
