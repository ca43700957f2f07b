// Package attribution decides which clicks earn credit for a conversion.
package attribution

import (
	"sort"
	"time"

	"affiliate-ledger/internal/core/domain"
)

// Signal identifies the conversion being resolved: the click it was
// reported against and that click's affiliate.
type Signal struct {
	ClickID     domain.ClickID
	AffiliateID domain.AffiliateID
}

// Resolve selects the credited clicks from a principal's history. The
// result is empty when no click is eligible; that is an attribution miss,
// not an error. Credits are returned oldest first and their weights sum
// to 1.
func Resolve(sig Signal, history []domain.ClickEvent, s domain.AttributionSettings, now time.Time) []domain.Credit {
	start := s.Window.Start(now)
	candidates := make([]domain.ClickEvent, 0, len(history))
	for _, c := range history {
		if Eligible(c, sig, s, start, now) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return before(candidates[i], candidates[j])
	})

	switch s.Model {
	case domain.FirstClick:
		return []domain.Credit{{ClickID: first(candidates).ClickID, Weight: 1}}
	case domain.Linear:
		w := 1 / float64(len(candidates))
		credits := make([]domain.Credit, len(candidates))
		for i, c := range candidates {
			credits[i] = domain.Credit{ClickID: c.ClickID, Weight: w}
		}
		return credits
	case domain.TimeDecay:
		return timeDecay(candidates, now.Sub(start), now)
	default:
		return []domain.Credit{{ClickID: candidates[len(candidates)-1].ClickID, Weight: 1}}
	}
}

// Eligible reports whether c may receive credit: accepted, not yet
// converted, created inside [start, now], and owned by the signal's
// affiliate unless multiple touch sessions are enabled.
func Eligible(c domain.ClickEvent, sig Signal, s domain.AttributionSettings, start, now time.Time) bool {
	if c.Filtered || c.Converted {
		return false
	}
	if c.CreatedAt.Before(start) || c.CreatedAt.After(now) {
		return false
	}
	if !s.MultipleTouchSessions && c.AffiliateID != sig.AffiliateID {
		return false
	}
	return true
}

func timeDecay(candidates []domain.ClickEvent, window time.Duration, now time.Time) []domain.Credit {
	scores := make([]float64, len(candidates))
	var total float64
	for i, c := range candidates {
		score := 0.0
		if window > 0 {
			score = 1 - float64(now.Sub(c.CreatedAt))/float64(window)
		}
		if score < 0 {
			score = 0
		}
		scores[i] = score
		total += score
	}
	if total == 0 {
		return []domain.Credit{{ClickID: candidates[len(candidates)-1].ClickID, Weight: 1}}
	}
	credits := make([]domain.Credit, 0, len(candidates))
	for i, c := range candidates {
		if scores[i] == 0 {
			continue
		}
		credits = append(credits, domain.Credit{ClickID: c.ClickID, Weight: scores[i] / total})
	}
	return credits
}

// first returns the earliest candidate, preferring the larger click id on a
// timestamp tie. candidates must be sorted with before.
func first(candidates []domain.ClickEvent) domain.ClickEvent {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if !c.CreatedAt.Equal(best.CreatedAt) {
			break
		}
		best = c
	}
	return best
}

// before orders clicks by time, then by click id, so the last element is
// the most recent click with the largest id among equals.
func before(a, b domain.ClickEvent) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ClickID < b.ClickID
}
