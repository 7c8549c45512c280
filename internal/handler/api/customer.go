package api

import (
	"net/http"

	reqdto "resort-engine/internal/handler/dto/request"
	resdto "resort-engine/internal/handler/dto/response"
	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/handler/middleware"
	"resort-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
}

func NewCustomerHandler(cmds commands.CustomerCommands) *CustomerHandler {
	return &CustomerHandler{cmds: cmds}
}

// @Summary Register customer
// @Description Create an unverified customer and return an access token
// @Tags customers
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Preferred locale (en or ar)"
// @Param request body reqdto.RegisterCustomerRequest true "Customer"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	reg, err := h.cmds.Register(c.Request.Context(), req.ToInput(string(middleware.GetLocale(c))))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegistration(reg))
}

// @Summary Request verification code
// @Description Issue a fresh six-digit code, delivered through the notification channel
// @Tags customers
// @Security BearerAuth
// @Success 202 "Accepted"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/me/verification-code [post]
func (h *CustomerHandler) RequestCode(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.IssueVerificationCode(c.Request.Context(), a.ID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Verify customer
// @Tags customers
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.VerifyCustomerRequest true "Code"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/me/verify [post]
func (h *CustomerHandler) Verify(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.VerifyCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Verify(c.Request.Context(), a.ID, req.Code); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
