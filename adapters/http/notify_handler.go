package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notifyUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/notify"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

type NotifyHandler struct {
	contactUseCase *notifyUC.ContactUseCase
	bookingUseCase *notifyUC.BookingUseCase
}

func NewNotifyHandler(contactUC *notifyUC.ContactUseCase, bookingUC *notifyUC.BookingUseCase) *NotifyHandler {
	return &NotifyHandler{
		contactUseCase: contactUC,
		bookingUseCase: bookingUC,
	}
}

// Contact accepts the public contact form. Delivery runs in the background;
// the caller gets success as soon as the payload is accepted.
func (h *NotifyHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact form", err))
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.Error(apperror.NewInvalidInput("name, email and message are required", nil))
		return
	}

	h.contactUseCase.Execute(c.Request.Context(), notifyUC.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	c.JSON(http.StatusOK, Envelope{Success: true})
}

func (h *NotifyHandler) Booking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for booking form", err))
		return
	}

	h.bookingUseCase.Execute(c.Request.Context(), notifyUC.BookingInput{
		Alias:            req.Alias,
		Email:            req.Email,
		Discord:          req.Discord,
		Twitter:          req.Twitter,
		PreferredChannel: req.PreferredChannel,
		ProjectCategory:  req.ProjectCategory,
		Budget:           req.Budget,
		Timeline:         req.Timeline,
		MissionBrief:     req.MissionBrief,
		PlanName:         req.PlanName,
		PlanLevel:        req.PlanLevel,
	})

	c.JSON(http.StatusOK, Envelope{Success: true})
}
