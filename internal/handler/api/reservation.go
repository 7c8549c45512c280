package api

import (
	"net/http"

	"resort-engine/internal/domain/reservation"
	reqdto "resort-engine/internal/handler/dto/request"
	resdto "resort-engine/internal/handler/dto/response"
	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Quote reservation
// @Description Check availability and price a request without reserving
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "booking, hall_reservation, pool_visit or restaurant_visit"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes/{kind} [post]
func (h *ReservationHandler) Quote(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.cmds.CheckAndPrice(c.Request.Context(), a, req.ToCommand(kind))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Create reservation
// @Description Reserve a resource after checking availability and resolving the price
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "booking, hall_reservation, pool_visit or restaurant_visit"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{kind} [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.cmds.CreateReservation(c.Request.Context(), a, req.ToCommand(kind))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := queries.ToReservationView(r)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+kind.String()+"/"+r.ID().String())
	c.JSON(http.StatusCreated, view)
}

// @Summary List reservations
// @Description Newest first with keyset pagination. Customers see only their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Reservation kind"
// @Param status query string false "Status"
// @Param payed query bool false "Payment state"
// @Param resource_id query string false "Resource ID"
// @Param customer_id query string false "Customer ID (staff only)"
// @Param start_from query string false "RFC 3339 lower bound of start"
// @Param start_before query string false "RFC 3339 upper bound of start"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} queries.ReservationPage
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if !bindQuery(c, &query) {
		return
	}
	in, err := query.ToInput()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	page, err := h.q.List(c.Request.Context(), a, in)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Reservation kind"
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{kind}/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), a, kind, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Transition reservation
// @Description Apply accept, cancel, check_in or check_out
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Reservation kind"
// @Param id path string true "Reservation ID"
// @Param action path string true "accept, cancel, check_in or check_out"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{kind}/{id}/{action} [post]
func (h *ReservationHandler) Transition(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	action, err := reservation.ParseAction(c.Param("action"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	r, err := h.cmds.Transition(c.Request.Context(), a, kind, id, action)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := queries.ToReservationView(r)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param kind path string true "Reservation kind"
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{kind}/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteReservation(c.Request.Context(), a, kind, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
