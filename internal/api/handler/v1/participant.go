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

type PurchaseService interface {
	ListPurchases(ctx context.Context, participantID uuid.UUID) ([]domain.PurchaseView, error)
	RegisterParticipant(ctx context.Context, info domain.ParticipantInfo) (domain.Participant, error)
	GetParticipant(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

type ParticipantHandler struct {
	svc PurchaseService
}

func NewParticipantHandler(svc PurchaseService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleRegisterParticipant godoc
// @Summary      Register a participant
// @Description  Returns the participant with the given email, or creates a new one.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request  body      request.ParticipantRequest  true  "Participant"
// @Success      200      {object}  domain.Participant
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants [post]
func (h *ParticipantHandler) HandleRegisterParticipant(ctx *gin.Context) {
	var req request.ParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.RegisterParticipant(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleRegisterParticipant -> h.svc.RegisterParticipant -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleGetParticipant godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Param        participantID  path      string  true  "Participant ID"
// @Success      200            {object}  domain.Participant
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /participants/{participantID} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	participantID, respErr := parseUUIDParam(ctx, "participantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), participantID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleGetParticipant -> h.svc.GetParticipant -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleListPurchases godoc
// @Summary      List a participant's purchases
// @Description  Lists purchases newest first with their numbers and raffle.
// @Tags         participants
// @Produce      json
// @Param        participantID  path      string  true  "Participant ID"
// @Success      200            {array}   domain.PurchaseView
// @Failure      400            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /participants/{participantID}/purchases [get]
func (h *ParticipantHandler) HandleListPurchases(ctx *gin.Context) {
	participantID, respErr := parseUUIDParam(ctx, "participantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	purchases, err := h.svc.ListPurchases(ctx.Request.Context(), participantID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleListPurchases -> h.svc.ListPurchases -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, purchases)
}
