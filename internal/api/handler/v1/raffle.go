package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/api/handler/v1/request"
	"github.com/rifaapp/rifa-api/internal/api/handler/v1/response"
	"github.com/rifaapp/rifa-api/internal/api/middleware"
	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/service"
)

type RaffleService interface {
	CreateRaffle(ctx context.Context, in service.CreateRaffleInput) (domain.RaffleSummary, error)
	ListRaffles(ctx context.Context, status string) ([]domain.RaffleSummary, error)
	GetRaffle(ctx context.Context, id uuid.UUID) (domain.RaffleSummary, error)
	UpdateRaffle(ctx context.Context, id, ownerID uuid.UUID, update domain.RaffleUpdate) (domain.RaffleSummary, error)
	DeleteRaffle(ctx context.Context, id, ownerID uuid.UUID) error
	ListNumbers(ctx context.Context, id uuid.UUID, offset int, limit *int) (domain.NumberPage, error)
}

type RaffleHandler struct {
	svc RaffleService
}

func NewRaffleHandler(svc RaffleService) *RaffleHandler {
	return &RaffleHandler{
		svc: svc,
	}
}

// HandleCreateRaffle godoc
// @Summary      Create a raffle
// @Description  Creates a raffle and seeds its number range. The caller becomes its owner.
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRaffleRequest  true  "Raffle details"
// @Success      201      {object}  domain.RaffleSummary
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /raffles [post]
// @Security     BearerAuth
func (h *RaffleHandler) HandleCreateRaffle(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing user")))
		return
	}

	var req request.CreateRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.CreateRaffle(ctx.Request.Context(), service.CreateRaffleInput{
		Raffle: req.ToDomain(&userID),
		Status: req.Status,
	})
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleCreateRaffle -> h.svc.CreateRaffle -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, raffle)
}

// HandleListRaffles godoc
// @Summary      List raffles
// @Description  Lists raffles newest first with their sold and live reserved counts.
// @Tags         raffles
// @Produce      json
// @Param        status  query     string  false  "Filter by status (draft, open, closed, cancelled, drawn)"
// @Success      200     {array}   domain.RaffleSummary
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /raffles [get]
func (h *RaffleHandler) HandleListRaffles(ctx *gin.Context) {
	raffles, err := h.svc.ListRaffles(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleListRaffles -> h.svc.ListRaffles -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, raffles)
}

// HandleGetRaffle godoc
// @Summary      Get a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200       {object}  domain.RaffleSummary
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [get]
func (h *RaffleHandler) HandleGetRaffle(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	raffle, err := h.svc.GetRaffle(ctx.Request.Context(), raffleID)
	if err != nil {
		if errors.Is(err, service.ErrRaffleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle", "raffleID", raffleID))
			return
		}

		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleGetRaffle -> h.svc.GetRaffle -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleUpdateRaffle godoc
// @Summary      Update a raffle
// @Description  Updates title, description, draw date or status. Only the owner may edit a raffle.
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                       true  "Raffle ID"
// @Param        request   body      request.UpdateRaffleRequest  true  "Fields to update"
// @Success      200       {object}  domain.RaffleSummary
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [patch]
// @Security     BearerAuth
func (h *RaffleHandler) HandleUpdateRaffle(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing user")))
		return
	}

	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.UpdateRaffle(ctx.Request.Context(), raffleID, userID, req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleUpdateRaffle -> h.svc.UpdateRaffle -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleDeleteRaffle godoc
// @Summary      Delete a raffle
// @Description  Deletes a raffle with all of its tickets and purchases. Only the owner may delete it.
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200       {object}  response.DeleteResponse
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [delete]
// @Security     BearerAuth
func (h *RaffleHandler) HandleDeleteRaffle(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing user")))
		return
	}

	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteRaffle(ctx.Request.Context(), raffleID, userID); err != nil {
		if errors.Is(err, service.ErrNotRaffleOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotRaffleOwner))
			return
		}

		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleDeleteRaffle -> h.svc.DeleteRaffle -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.DeleteResponse{Status: "deleted", RaffleID: raffleID.String()})
}

// HandleListNumbers godoc
// @Summary      List raffle numbers
// @Description  Returns a window of the raffle numbers with their state. Expired holds are shown as available.
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true   "Raffle ID"
// @Param        offset    query     int     false  "Offset from number_start (default 0)"
// @Param        limit     query     int     false  "Window size (default: whole range)"
// @Success      200       {object}  domain.NumberPage
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/numbers [get]
func (h *RaffleHandler) HandleListNumbers(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid offset: %w", err)))
		return
	}

	var limit *int
	if raw, ok := ctx.GetQuery("limit"); ok {
		l, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %w", err)))
			return
		}
		limit = &l
	}

	page, err := h.svc.ListNumbers(ctx.Request.Context(), raffleID, offset, limit)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleListNumbers -> h.svc.ListNumbers -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, *response.Err) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, response.ErrBadRequest(fmt.Errorf("invalid %s: %w", name, err))
	}

	return id, nil
}
