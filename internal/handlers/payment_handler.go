package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

type PaymentHandler struct {
	BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    NewBaseHandler(logger),
		paymentService: paymentService,
	}
}

// CreatePaymentIntent opens a payment intent for the given price
// @Summary Create payment intent
// @Description Converts the price to minor units and opens a card intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body services.PaymentIntentRequest true "Price"
// @Success 200 {object} services.PaymentIntentResponse
// @Failure 400 {object} ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req services.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.paymentService.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordPayment stores a completed payment, enrolling the student
// @Summary Record payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body services.PaymentCreateRequest true "Payment data"
// @Success 201 {object} services.InsertResult
// @Failure 400 {object} ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req services.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.paymentService.Record(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListEnrolledClasses lists the classes a student has paid for
// @Summary List enrolled classes
// @Tags payments
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {array} models.EnrolledClass
// @Failure 400 {object} ErrorResponse
// @Router /enrolled-classes/{email} [get]
func (h *PaymentHandler) ListEnrolledClasses(c *gin.Context) {
	enrolled, err := h.paymentService.EnrolledClasses(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrolled)
}
