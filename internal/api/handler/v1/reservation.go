package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/api/handler/v1/request"
	"github.com/rifaapp/rifa-api/internal/api/handler/v1/response"
	"github.com/rifaapp/rifa-api/internal/domain"
)

type ReservationService interface {
	Reserve(ctx context.Context, in domain.ReserveInput) (domain.Reservation, error)
	Release(ctx context.Context, raffleID, reservationID uuid.UUID) (int, error)
	Confirm(ctx context.Context, in domain.ConfirmInput) (domain.Purchase, error)
	Draw(ctx context.Context, raffleID uuid.UUID) (domain.DrawResult, error)
}

type ReservationHandler struct {
	svc        ReservationService
	defaultTTL int
}

func NewReservationHandler(svc ReservationService, defaultTTL int) *ReservationHandler {
	return &ReservationHandler{
		svc:        svc,
		defaultTTL: defaultTTL,
	}
}

// HandleReserve godoc
// @Summary      Reserve numbers
// @Description  Holds all requested numbers for the participant, or none of them. The hold lasts at most 30 minutes.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                  true  "Raffle ID"
// @Param        request   body      request.ReserveRequest  true  "Numbers to hold"
// @Success      201       {object}  domain.Reservation
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err  "detail.numbers lists the unavailable numbers"
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/reservations [post]
func (h *ReservationHandler) HandleReserve(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservation, err := h.svc.Reserve(ctx.Request.Context(), req.ToDomain(raffleID, h.defaultTTL))
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleReserve -> h.svc.Reserve -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, reservation)
}

// HandleRelease godoc
// @Summary      Release a reservation
// @Description  Frees the numbers still held by the reservation. Releasing twice, or on an unknown raffle, releases nothing.
// @Tags         reservations
// @Produce      json
// @Param        raffleID       path      string  true  "Raffle ID"
// @Param        reservationID  path      string  true  "Reservation ID"
// @Success      200            {object}  response.ReleaseResponse
// @Failure      400            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /raffles/{raffleID}/reservations/{reservationID} [delete]
func (h *ReservationHandler) HandleRelease(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reservationID, respErr := parseUUIDParam(ctx, "reservationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	released, err := h.svc.Release(ctx.Request.Context(), raffleID, reservationID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleRelease -> h.svc.Release -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.ReleaseResponse{Status: "released", Released: released})
}

// HandleConfirm godoc
// @Summary      Confirm a purchase
// @Description  Converts a live reservation into a purchase. Either participant_id or participant must be given.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                  true  "Raffle ID"
// @Param        request   body      request.ConfirmRequest  true  "Reservation to confirm"
// @Success      201       {object}  domain.Purchase
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/purchases [post]
func (h *ReservationHandler) HandleConfirm(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ConfirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	purchase, err := h.svc.Confirm(ctx.Request.Context(), req.ToDomain(raffleID))
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleConfirm -> h.svc.Confirm -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, purchase)
}

// HandleDraw godoc
// @Summary      Draw the winner
// @Description  Picks a sold number uniformly at random. Repeated calls return the same winner.
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200       {object}  domain.DrawResult
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/draw [post]
func (h *ReservationHandler) HandleDraw(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.Draw(ctx.Request.Context(), raffleID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleDraw -> h.svc.Draw -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
