package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cjalex1313/trex-gym/internal/api/metrics"
	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// PaymentHandler exposes payment recording and the outstanding-balance report.
type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type createPaymentRequest struct {
	Amount      float64   `json:"amount"      validate:"required,gt=0"`
	PaymentDate time.Time `json:"paymentDate" validate:"required"`
	Method      string    `json:"method"      validate:"required,oneof=cash card transfer"`
	Notes       string    `json:"notes"       validate:"omitempty,max=500"`
}

type updatePaymentRequest struct {
	Amount      *float64   `json:"amount"      validate:"omitempty,gt=0"`
	PaymentDate *time.Time `json:"paymentDate"`
	Method      *string    `json:"method"      validate:"omitempty,oneof=cash card transfer"`
	Notes       *string    `json:"notes"       validate:"omitempty,max=500"`
}

// ListBySubscription returns the payments recorded against one subscription.
//
// @Summary      List subscription payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        subscriptionId  path      string  true  "Subscription id"
// @Success      200             {array}   domain.Payment
// @Failure      404             {object}  map[string]string
// @Router       /subscriptions/{subscriptionId}/payments [get]
func (h *PaymentHandler) ListBySubscription(c echo.Context) error {
	payments, err := h.paymentService.ListBySubscription(c.Request().Context(), c.Param("subscriptionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// ListByClient returns every payment made by one client, across all of their
// subscriptions.
//
// @Summary      List client payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {array}   domain.Payment
// @Failure      404       {object}  map[string]string
// @Router       /clients/{clientId}/payments [get]
func (h *PaymentHandler) ListByClient(c echo.Context) error {
	payments, err := h.paymentService.ListByClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// CreateForSubscription records a payment against a subscription.
//
// @Summary      Record payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subscriptionId  path      string                true  "Subscription id"
// @Param        body            body      createPaymentRequest  true  "Payment details"
// @Success      201             {object}  domain.Payment
// @Failure      400             {object}  map[string]string
// @Failure      404             {object}  map[string]string
// @Router       /subscriptions/{subscriptionId}/payments [post]
func (h *PaymentHandler) CreateForSubscription(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.paymentService.CreateForSubscription(c.Request().Context(), c.Param("subscriptionId"), ports.CreatePaymentInput{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      domain.PaymentMethod(req.Method),
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(string(payment.Method)).Inc()
	return c.JSON(http.StatusCreated, payment)
}

// Update applies a partial update to a payment.
//
// @Summary      Update payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Payment id"
// @Param        body  body      updatePaymentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Payment
// @Failure      404   {object}  map[string]string
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdatePaymentInput{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
	}
	if req.Method != nil {
		m := domain.PaymentMethod(*req.Method)
		input.Method = &m
	}

	payment, err := h.paymentService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Delete removes a payment record. Payments are the only hard delete in the
// system; everything else is soft-disabled.
//
// @Summary      Delete payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  ports.DeletePaymentResult
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	result, err := h.paymentService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Outstanding returns every subscription with money still owed, oldest end
// date first.
//
// @Summary      Outstanding balances
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.OutstandingItem
// @Router       /payments/outstanding [get]
func (h *PaymentHandler) Outstanding(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.OutstandingScanDuration)
	items, err := h.paymentService.Outstanding(c.Request().Context())
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
