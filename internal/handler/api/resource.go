package api

import (
	"net/http"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	reqdto "resort-engine/internal/handler/dto/request"
	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	cmds commands.ResourceCommands
	q    queries.ResourceQueries
	loc  *time.Location
}

// NewResourceHandler interprets override dates in loc.
func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries, loc *time.Location) *ResourceHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ResourceHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param kind query string false "room, hall, pool or restaurant"
// @Param room_type_id query string false "Room type"
// @Success 200 {array} queries.ResourceView
// @Failure 400 {object} httperr.Response
// @Router /api/resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	var query reqdto.ListResourcesQuery
	if !bindQuery(c, &query) {
		return
	}
	views, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} queries.ResourceView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get rate card
// @Description Weekly rates and date overrides of a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} queries.RateCardView
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id}/rates [get]
func (h *ResourceHandler) Rates(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	card, err := h.q.Rates(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} queries.ResourceView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, weekly, err := req.ToSpec()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	res, err := h.cmds.CreateResource(c.Request.Context(), spec, weekly)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := queries.ToResourceView(res)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/resources/"+res.ID().String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Update resource
// @Description Fields left out of the body keep their value
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Patch"
// @Success 200 {object} queries.ResourceView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id} [patch]
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateResourceRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	res, err := h.cmds.UpdateResource(c.Request.Context(), id, patch)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := queries.ToResourceView(res)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete resource
// @Tags resources
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteResource(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set weekly rate
// @Tags resources
// @Accept json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param weekday path string true "Day name, e.g. saturday"
// @Param request body reqdto.PriceRequest true "Price"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id}/rates/{weekday} [put]
func (h *ResourceHandler) SetWeeklyRate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	day, err := resource.ParseWeekday(c.Param("weekday"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	var req reqdto.PriceRequest
	if !bindJSON(c, &req) {
		return
	}
	price, err := req.Money()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	if err := h.cmds.SetWeeklyRate(c.Request.Context(), id, day, price); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add price override
// @Description Replace the weekly rate for an inclusive date range
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.AddOverrideRequest true "Override"
// @Success 201 {object} queries.OverrideView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/resources/{id}/overrides [post]
func (h *ResourceHandler) AddOverride(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddOverrideRequest
	if !bindJSON(c, &req) {
		return
	}
	start, end, err := req.Window(h.loc)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	price, err := money.FromFloat(req.Price)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	o, err := h.cmds.AddOverride(c.Request.Context(), id, start, end, price)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.ToOverrideView(o))
}
