package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/generated/servers"
	"freightmatch/internal/observability"
	"freightmatch/internal/pkg/errs"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	postLoadHandler            commands.PostLoadCommandHandler
	findCandidatesHandler      commands.FindCandidatesCommandHandler
	makeOfferHandler           commands.MakeOfferCommandHandler
	respondToOfferHandler      commands.RespondToOfferCommandHandler
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler

	// Query handlers
	getActiveLoadsHandler    queries.GetActiveLoadsQueryHandler
	getLoadMatchesHandler    queries.GetLoadMatchesQueryHandler
	getShipmentEventsHandler queries.GetShipmentEventsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	postLoadHandler commands.PostLoadCommandHandler,
	findCandidatesHandler commands.FindCandidatesCommandHandler,
	makeOfferHandler commands.MakeOfferCommandHandler,
	respondToOfferHandler commands.RespondToOfferCommandHandler,
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler,
	getActiveLoadsHandler queries.GetActiveLoadsQueryHandler,
	getLoadMatchesHandler queries.GetLoadMatchesQueryHandler,
	getShipmentEventsHandler queries.GetShipmentEventsQueryHandler,
) *Server {
	return &Server{
		postLoadHandler:            postLoadHandler,
		findCandidatesHandler:      findCandidatesHandler,
		makeOfferHandler:           makeOfferHandler,
		respondToOfferHandler:      respondToOfferHandler,
		recordTrackingEventHandler: recordTrackingEventHandler,
		getActiveLoadsHandler:      getActiveLoadsHandler,
		getLoadMatchesHandler:      getLoadMatchesHandler,
		getShipmentEventsHandler:   getShipmentEventsHandler,
	}
}

// PostLoad handles POST /api/v1/loads - posts a new load for matching.
func (s *Server) PostLoad(ctx echo.Context) error {
	var newLoad servers.NewLoad
	if err := ctx.Bind(&newLoad); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickup, err := kernel.NewGeoPoint(newLoad.Pickup.Lat, newLoad.Pickup.Lon)
	if err != nil {
		return errorJSON(ctx, err)
	}
	delivery, err := kernel.NewGeoPoint(newLoad.Delivery.Lat, newLoad.Delivery.Lon)
	if err != nil {
		return errorJSON(ctx, err)
	}

	loadID := kernel.NewUUID()

	cmd, err := commands.NewPostLoadCommand(commands.PostLoadParams{
		LoadID:                loadID,
		Reference:             newLoad.Reference,
		EquipmentType:         kernel.EquipmentType(newLoad.EquipmentType),
		WeightLbs:             intValue(newLoad.WeightLbs),
		PickupLocation:        pickup,
		PickupState:           newLoad.Pickup.State,
		PickupDate:            newLoad.Pickup.Date,
		DeliveryLocation:      delivery,
		DeliveryState:         newLoad.Delivery.State,
		DeliveryDate:          newLoad.Delivery.Date,
		Hazmat:                boolValue(newLoad.Hazmat),
		TemperatureControlled: boolValue(newLoad.TemperatureControlled),
		TeamDriver:            boolValue(newLoad.TeamDriver),
		RateQuoted:            newLoad.RateQuoted,
		RateTotal:             floatValue(newLoad.RateTotal),
		ExpiresAt:             newLoad.ExpiresAt,
	})
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.postLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: loadID.Bytes()})
}

// GetActiveLoads handles GET /api/v1/loads/active - lists loads in a
// non-terminal status.
func (s *Server) GetActiveLoads(ctx echo.Context) error {
	query := queries.NewGetActiveLoadsQuery()

	loads, err := s.getActiveLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.Load, len(loads))
	for i, loadResp := range loads {
		response[i] = servers.Load{
			Id:            loadResp.ID.Bytes(),
			Reference:     loadResp.Reference,
			EquipmentType: loadResp.EquipmentType.String(),
			OriginState:   loadResp.OriginState,
			PickupAt:      loadResp.PickupAt,
			DestState:     loadResp.DestState,
			DeliveryAt:    loadResp.DeliveryAt,
			RateTotal:     loadResp.RateTotal,
			Status:        loadResp.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FindCandidates handles POST /api/v1/loads/{loadId}/candidates - searches
// eligible carriers and creates pending matches.
func (s *Server) FindCandidates(ctx echo.Context, loadID openapi_types.UUID) error {
	var search servers.CandidateSearch
	if err := ctx.Bind(&search); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(loadID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewFindCandidatesCommand(
		id,
		intValue(search.MaxCandidates),
		floatValue(search.MinSafetyRating),
		time.Now().UTC(),
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	started := time.Now()
	matches, err := s.findCandidatesHandler.Handle(ctx.Request().Context(), cmd)
	observability.CandidateSearchDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return errorJSON(ctx, err)
	}
	observability.MatchesCreatedTotal.Add(float64(len(matches)))

	response := make([]servers.Match, len(matches))
	for i, m := range matches {
		response[i] = matchResponse(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLoadMatches handles GET /api/v1/loads/{loadId}/matches - lists every
// match for a load, best-ranked first.
func (s *Server) GetLoadMatches(ctx echo.Context, loadID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(loadID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetLoadMatchesQuery(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	matches, err := s.getLoadMatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.Match, len(matches))
	for i, matchResp := range matches {
		response[i] = servers.Match{
			Id:             matchResp.ID.Bytes(),
			CarrierId:      matchResp.CarrierID.Bytes(),
			Status:         matchResp.Status,
			Score:          matchResp.Score,
			DeadheadMiles:  matchResp.DeadheadMiles,
			FuelEstimate:   matchResp.FuelEstimate,
			MarginEstimate: matchResp.MarginEstimate,
			RateOffered:    optionalRate(matchResp.RateOffered),
			RateAccepted:   optionalRate(matchResp.RateAccepted),
			CreatedAt:      matchResp.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MakeOffer handles POST /api/v1/matches/{matchId}/offer - promotes a
// pending match to an offer.
func (s *Server) MakeOffer(ctx echo.Context, matchID openapi_types.UUID) error {
	var offer servers.Offer
	if err := ctx.Bind(&offer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(matchID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMakeOfferCommand(id, floatValue(offer.Rate), time.Now().UTC())
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.makeOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RespondToOffer handles POST /api/v1/matches/{matchId}/response - records
// the carrier's accept or reject decision on an offer.
func (s *Server) RespondToOffer(ctx echo.Context, matchID openapi_types.UUID) error {
	var offerResponse servers.OfferResponse
	if err := ctx.Bind(&offerResponse); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(matchID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	var reason match.RejectionReason
	if offerResponse.Reason != nil {
		reason = match.RejectionReason(*offerResponse.Reason)
	}

	cmd, err := commands.NewRespondToOfferCommand(
		id,
		commands.Decision(offerResponse.Decision),
		floatValue(offerResponse.Rate),
		reason,
		time.Now().UTC(),
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.respondToOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		observability.OfferResponsesTotal.WithLabelValues(string(offerResponse.Decision), "error").Inc()
		return errorJSON(ctx, handleErr)
	}
	observability.OfferResponsesTotal.WithLabelValues(string(offerResponse.Decision), "ok").Inc()

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentEvents handles GET /api/v1/shipments/{shipmentId}/events -
// lists a shipment's tracking history in occurred-at order.
func (s *Server) GetShipmentEvents(ctx echo.Context, shipmentID openapi_types.UUID, params servers.GetShipmentEventsParams) error {
	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	descending := params.Order != nil && *params.Order == servers.GetShipmentEventsParamsOrderDesc

	query, err := queries.NewGetShipmentEventsQuery(id, descending)
	if err != nil {
		return errorJSON(ctx, err)
	}

	events, err := s.getShipmentEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.TrackingEvent, len(events))
	for i, event := range events {
		trackingEvent := servers.TrackingEvent{
			Id:           event.ID.Bytes(),
			EventType:    event.EventType,
			Status:       event.Status,
			TemperatureC: event.TemperatureC,
			HumidityPct:  event.HumidityPct,
			Description:  event.Description,
			Source:       event.Source,
			OccurredAt:   event.OccurredAt,
		}
		if event.Location != nil {
			lat, lon := event.Location.Lat(), event.Location.Lon()
			trackingEvent.Lat, trackingEvent.Lon = &lat, &lon
		}
		response[i] = trackingEvent
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordTrackingEvent handles POST /api/v1/shipments/{shipmentId}/events -
// records a tracking event against a shipment.
func (s *Server) RecordTrackingEvent(ctx echo.Context, shipmentID openapi_types.UUID) error {
	var newEvent servers.NewTrackingEvent
	if err := ctx.Bind(&newEvent); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	var location *kernel.GeoPoint
	if newEvent.Lat != nil && newEvent.Lon != nil {
		point, pointErr := kernel.NewGeoPoint(*newEvent.Lat, *newEvent.Lon)
		if pointErr != nil {
			return errorJSON(ctx, pointErr)
		}
		location = &point
	}

	cmd, err := commands.NewRecordTrackingEventCommand(commands.RecordTrackingEventParams{
		ShipmentID:   id,
		EventType:    shipment.EventType(newEvent.EventType),
		Status:       stringValue(newEvent.Status),
		Location:     location,
		TemperatureC: newEvent.TemperatureC,
		HumidityPct:  newEvent.HumidityPct,
		Description:  stringValue(newEvent.Description),
		Source:       newEvent.Source,
		OccurredAt:   newEvent.OccurredAt,
	})
	if err != nil {
		return errorJSON(ctx, err)
	}

	if handleErr := s.recordTrackingEventHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}
	observability.TrackingEventsTotal.WithLabelValues(string(newEvent.EventType)).Inc()

	return ctx.NoContent(http.StatusNoContent)
}

// matchResponse maps a match aggregate to its API representation.
func matchResponse(m *match.Match) servers.Match {
	return servers.Match{
		Id:             m.ID().Bytes(),
		CarrierId:      m.CarrierID().Bytes(),
		Status:         m.Status().String(),
		Score:          m.Score(),
		DeadheadMiles:  m.DeadheadMiles(),
		FuelEstimate:   m.FuelEstimate(),
		MarginEstimate: m.MarginEstimate(),
		RateOffered:    optionalRate(m.RateOffered()),
		RateAccepted:   optionalRate(m.RateAccepted()),
		CreatedAt:      m.CreatedAt(),
	}
}

// errorJSON writes the error body with the status implied by the error's
// classification in errs.
func errorJSON(ctx echo.Context, err error) error {
	status := errorStatus(err)
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrCarrierIneligible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func boolValue(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optionalRate(rate float64) *float64 {
	if rate == 0 {
		return nil
	}
	return &rate
}
