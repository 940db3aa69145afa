package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// SubscriptionHandler exposes subscription management endpoints.
type SubscriptionHandler struct {
	subscriptionService ports.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

type createSubscriptionRequest struct {
	PlanType  string    `json:"planType"  validate:"required,oneof=monthly quarterly semiannual annual custom"`
	PlanName  string    `json:"planName"  validate:"omitempty,max=120"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate"   validate:"required"`
	Price     float64   `json:"price"     validate:"required,gt=0"`
	Currency  string    `json:"currency"  validate:"omitempty,oneof=RON EUR"`
	Notes     string    `json:"notes"     validate:"omitempty,max=500"`
}

type updateSubscriptionRequest struct {
	PlanType  *string    `json:"planType"  validate:"omitempty,oneof=monthly quarterly semiannual annual custom"`
	PlanName  *string    `json:"planName"  validate:"omitempty,max=120"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Status    *string    `json:"status"    validate:"omitempty,oneof=active cancelled expired"`
	Price     *float64   `json:"price"     validate:"omitempty,gt=0"`
	Currency  *string    `json:"currency"  validate:"omitempty,oneof=RON EUR"`
	Notes     *string    `json:"notes"     validate:"omitempty,max=500"`
}

// ListByClient returns all subscriptions belonging to one client.
//
// @Summary      List client subscriptions
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {array}   domain.Subscription
// @Failure      404       {object}  map[string]string
// @Router       /clients/{clientId}/subscriptions [get]
func (h *SubscriptionHandler) ListByClient(c echo.Context) error {
	subs, err := h.subscriptionService.ListByClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// CreateForClient opens a new subscription for a client. A fresh active
// subscription also flips the client to active.
//
// @Summary      Create subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string                     true  "Client id"
// @Param        body      body      createSubscriptionRequest  true  "Subscription details"
// @Success      201       {object}  domain.Subscription
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /clients/{clientId}/subscriptions [post]
func (h *SubscriptionHandler) CreateForClient(c echo.Context) error {
	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.subscriptionService.CreateForClient(c.Request().Context(), c.Param("clientId"), ports.CreateSubscriptionInput{
		PlanType:  domain.PlanType(req.PlanType),
		PlanName:  req.PlanName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
		Currency:  domain.Currency(req.Currency),
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sub)
}

// Get returns a single subscription by id.
//
// @Summary      Get subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Subscription id"
// @Success      200  {object}  domain.Subscription
// @Failure      404  {object}  map[string]string
// @Router       /subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c echo.Context) error {
	sub, err := h.subscriptionService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// Update applies a partial update to a subscription. Date changes are
// revalidated against the merged range.
//
// @Summary      Update subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Subscription id"
// @Param        body  body      updateSubscriptionRequest  true  "Fields to update"
// @Success      200   {object}  domain.Subscription
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /subscriptions/{id} [put]
func (h *SubscriptionHandler) Update(c echo.Context) error {
	var req updateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateSubscriptionInput{
		PlanName:  req.PlanName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
		Notes:     req.Notes,
	}
	if req.PlanType != nil {
		pt := domain.PlanType(*req.PlanType)
		input.PlanType = &pt
	}
	if req.Status != nil {
		st := domain.SubscriptionStatus(*req.Status)
		input.Status = &st
	}
	if req.Currency != nil {
		cur := domain.Currency(*req.Currency)
		input.Currency = &cur
	}

	sub, err := h.subscriptionService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}
