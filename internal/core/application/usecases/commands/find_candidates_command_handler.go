package commands

import (
	"context"

	"golang.org/x/sync/errgroup"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/load"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"
)

// maxParallelEstimates bounds the fan-out against the routing provider
// during a single candidate search.
const maxParallelEstimates = 8

// FindCandidatesCommandHandler orchestrates the candidate search for a load.
// Filters the carrier pool through the eligibility rules, scores survivors
// concurrently, and persists the top candidates as pending matches.
//
// Reads and route estimates run outside the transaction; only the match
// writes and the load transition happen inside it, so the search never holds
// a database transaction across an external routing call.
//
// Example:
//
//	handler := NewFindCandidatesCommandHandler(uowFactory, directory, estimator, publisher)
//	cmd, _ := NewFindCandidatesCommand(loadID, 0, 0, time.Now().UTC())
//
//	matches, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("candidate search failed: %w", err)
//	}
//	// matches are ranked best-first and persisted in "pending" status
type FindCandidatesCommandHandler struct {
	uowFactory LoadMatchUoWFactory
	carriers   ports.CarrierDirectory
	routes     ports.RouteEstimator
	publisher  ports.EventPublisher
}

// NewFindCandidatesCommandHandler creates a handler for candidate search
// operations. Requires the carrier directory for the pool, a route estimator
// for deadhead and linehaul estimates, and an event publisher for
// match.created notifications.
func NewFindCandidatesCommandHandler(
	uowFactory LoadMatchUoWFactory,
	carriers ports.CarrierDirectory,
	routes ports.RouteEstimator,
	publisher ports.EventPublisher,
) FindCandidatesCommandHandler {
	return FindCandidatesCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
		routes:     routes,
		publisher:  publisher,
	}
}

// Handle processes the candidate search command.
// Returns the created matches ranked best-first. An empty result is not an
// error: a load with no eligible carriers simply produces no matches and
// stays in its current status.
func (h *FindCandidatesCommandHandler) Handle(ctx context.Context, cmd FindCandidatesCommand) ([]*match.Match, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	loadRepo := uow.LoadRepository()
	matchRepo := uow.MatchRepository()

	l, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}
	if err = h.checkSearchable(l, cmd); err != nil {
		return nil, err
	}

	engaged, err := h.engagedCarriers(ctx, matchRepo, l.ID())
	if err != nil {
		return nil, err
	}

	pool, err := h.carriers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	eligible, err := services.NewEligibilityFilter().Filter(l, pool, engaged, cmd.Now())
	if err != nil {
		return nil, err
	}
	if cmd.MinSafetyRating() > 0 {
		eligible = filterByRating(eligible, cmd.MinSafetyRating())
	}
	if len(eligible) == 0 {
		return []*match.Match{}, nil
	}

	candidates, err := h.scoreCandidates(ctx, l, eligible)
	if err != nil {
		return nil, err
	}

	services.NewMatchScorer().Rank(candidates)
	if len(candidates) > cmd.MaxCandidates() {
		candidates = candidates[:cmd.MaxCandidates()]
	}

	matches, err := h.persistMatches(ctx, uow, l, candidates, cmd)
	if err != nil {
		return nil, err
	}

	h.publishCreated(ctx, matches, cmd)

	return matches, nil
}

// checkSearchable rejects searches against loads that can no longer take
// new matches.
func (h *FindCandidatesCommandHandler) checkSearchable(l *load.Load, cmd FindCandidatesCommand) error {
	if l.Status() != load.Posted && l.Status() != load.Matched {
		return errs.NewConflictError("load", l.ID().String(), "is no longer open for matching")
	}
	if l.Status() == load.Posted && l.IsExpired(cmd.Now()) {
		return errs.NewConflictError("load", l.ID().String(), "posting has expired")
	}

	return nil
}

// engagedCarriers collects the carriers already holding an active match for
// the load, so the filter can exclude them from a repeat search.
func (h *FindCandidatesCommandHandler) engagedCarriers(
	ctx context.Context,
	matchRepo ports.MatchRepository,
	loadID kernel.UUID,
) (map[string]bool, error) {
	active, err := matchRepo.GetActiveByLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}

	engaged := make(map[string]bool, len(active))
	for _, m := range active {
		engaged[m.CarrierID().String()] = true
	}

	return engaged, nil
}

// scoreCandidates estimates and scores every eligible carrier concurrently.
// The linehaul estimate is shared; each carrier adds its own deadhead leg.
func (h *FindCandidatesCommandHandler) scoreCandidates(
	ctx context.Context,
	l *load.Load,
	eligible []carrier.Capability,
) ([]services.ScoredCandidate, error) {
	linehaul, err := h.routes.EstimateRoute(ctx, l.Pickup().Location(), l.Delivery().Location())
	if err != nil {
		return nil, err
	}

	scorer := services.NewMatchScorer()
	costModel := services.NewCostModel()
	candidates := make([]services.ScoredCandidate, len(eligible))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelEstimates)
	for i, capability := range eligible {
		g.Go(func() error {
			deadhead, estErr := h.routes.EstimateRoute(gCtx, capability.CurrentLocation, l.Pickup().Location())
			if estErr != nil {
				return estErr
			}

			breakdown, scoreErr := scorer.Score(l, capability, deadhead.DistanceMiles)
			if scoreErr != nil {
				return scoreErr
			}

			fuel := linehaul.FuelCost + deadhead.FuelCost
			totalMiles := linehaul.DistanceMiles + deadhead.DistanceMiles
			candidates[i] = services.ScoredCandidate{
				Capability:     capability,
				Breakdown:      breakdown,
				DeadheadMiles:  deadhead.DistanceMiles,
				FuelEstimate:   fuel,
				MarginEstimate: costModel.Margin(l.RateTotal(), fuel, totalMiles),
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// persistMatches writes the ranked candidates as pending matches and marks
// the load matched, all inside one transaction.
func (h *FindCandidatesCommandHandler) persistMatches(
	ctx context.Context,
	uow LoadMatchUoW,
	l *load.Load,
	candidates []services.ScoredCandidate,
	cmd FindCandidatesCommand,
) ([]*match.Match, error) {
	if len(candidates) == 0 {
		return []*match.Match{}, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matchRepo := uow.MatchRepository()
	matches := make([]*match.Match, 0, len(candidates))
	for _, candidate := range candidates {
		m, err := match.NewMatch(match.Params{
			ID:             kernel.NewUUID(),
			LoadID:         l.ID(),
			CarrierID:      candidate.Capability.ID,
			Score:          candidate.Breakdown.Total,
			DeadheadMiles:  candidate.DeadheadMiles,
			FuelEstimate:   candidate.FuelEstimate,
			MarginEstimate: candidate.MarginEstimate,
			CreatedAt:      cmd.Now(),
		})
		if err != nil {
			return nil, err
		}

		if err = matchRepo.Add(ctx, m); err != nil {
			return nil, err
		}

		matches = append(matches, m)
	}

	if err := l.MarkMatched(); err != nil {
		return nil, err
	}
	if err := uow.LoadRepository().Update(ctx, l); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return matches, nil
}

func (h *FindCandidatesCommandHandler) publishCreated(ctx context.Context, matches []*match.Match, cmd FindCandidatesCommand) {
	if len(matches) == 0 {
		return
	}

	events := make([]ports.DomainEvent, 0, len(matches))
	for _, m := range matches {
		events = append(events, ports.DomainEvent{
			Type:       ports.EventMatchCreated,
			OccurredAt: cmd.Now(),
			LoadID:     m.LoadID().String(),
			MatchID:    m.ID().String(),
			Payload: map[string]any{
				"carrierId":     m.CarrierID().String(),
				"score":         m.Score(),
				"deadheadMiles": m.DeadheadMiles(),
			},
		})
	}

	_ = h.publisher.Publish(ctx, events...)
}

func filterByRating(pool []carrier.Capability, minRating float64) []carrier.Capability {
	kept := make([]carrier.Capability, 0, len(pool))
	for _, capability := range pool {
		if capability.SafetyRating >= minRating {
			kept = append(kept, capability)
		}
	}

	return kept
}
