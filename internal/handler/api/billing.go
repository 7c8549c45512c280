package api

import (
	"net/http"

	reqdto "resort-engine/internal/handler/dto/request"
	resdto "resort-engine/internal/handler/dto/response"
	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	cmds commands.BillingCommands
	q    queries.InvoiceQueries
}

func NewBillingHandler(cmds commands.BillingCommands, q queries.InvoiceQueries) *BillingHandler {
	return &BillingHandler{cmds: cmds, q: q}
}

// @Summary Pay invoices
// @Description Settle a batch of invoices in one payment method. The batch is all-or-nothing.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PayInvoicesRequest true "Payment batch"
// @Success 201 {object} resdto.PaymentSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/payments [post]
func (h *BillingHandler) Pay(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.PayInvoicesRequest
	if !bindJSON(c, &req) {
		return
	}
	batch, err := req.ToBatch()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	summary, err := h.cmds.PayInvoices(c.Request.Context(), a, batch)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSummary(summary))
}

// @Summary List invoices
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer ID (staff only)"
// @Param paid query bool false "List settled invoices instead of open ones"
// @Success 200 {array} queries.InvoiceView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invoices [get]
func (h *BillingHandler) Invoices(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.InvoicesQuery
	if !bindQuery(c, &query) {
		return
	}

	invoices, err := h.q.ListInvoices(c.Request.Context(), a, query.Customer(), query.Paid)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// @Summary List payments
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer ID (staff only)"
// @Success 200 {array} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments [get]
func (h *BillingHandler) Payments(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.InvoicesQuery
	if !bindQuery(c, &query) {
		return
	}

	payments, err := h.q.ListPayments(c.Request.Context(), a, query.Customer())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
