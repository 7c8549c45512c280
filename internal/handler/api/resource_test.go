//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/queries"
	"resort-engine/internal/usecase/shared"
	"resort-engine/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	routerSuite
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) TestCreate() {
	roomType := uuid.New()
	reqBody := map[string]any{
		"kind":         "room",
		"name":         "Sea View 101",
		"room_type_id": roomType.String(),
		"capacity":     2,
		"weekly_rates": map[string]float64{"Saturday": 250, "sunday": 180.5},
	}

	s.Run("success: staff creates a room with weekly rates", func() {
		s.resourceCmds.EXPECT().CreateResource(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec resource.Spec, weekly resource.WeeklyRates) (*resource.Resource, error) {
				s.Equal(resource.KindRoom, spec.Kind)
				s.Equal(roomType, spec.RoomTypeID)
				s.Equal(resource.WeeklyRates{
					time.Saturday: money.FromCents(25000),
					time.Sunday:   money.FromCents(18050),
				}, weekly)
				return resource.NewResource(uuid.New(), spec, time.Now())
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/resources", reqBody, staffToken)

		var body queries.ResourceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Sea View 101", body.Name)
		s.Equal("available", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/resources/" + body.ID.String()})
	})

	s.Run("error: 403 Forbidden for customers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/resources", reqBody, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: invalid bodies", func() {
		for name, body := range map[string]map[string]any{
			"unknown kind":    {"kind": "spa", "name": "Spa", "capacity": 4},
			"zero capacity":   {"kind": "pool", "name": "Lagoon", "capacity": 0, "hourly_rate": 10},
			"unknown weekday": {"kind": "room", "name": "101", "capacity": 2, "room_type_id": roomType.String(), "weekly_rates": map[string]float64{"funday": 1}},
			"bad status":      {"kind": "hall", "name": "Hall", "capacity": 100, "hourly_rate": 50, "status": "demolished"},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/resources", body, staffToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ResourceHandlerTestSuite) TestUpdate() {
	id := uuid.New()

	s.resourceCmds.EXPECT().UpdateResource(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p commands.ResourcePatch) (*resource.Resource, error) {
			s.Nil(p.Name)
			s.Nil(p.HourlyRate)
			s.Require().NotNil(p.Status)
			s.Equal(resource.StatusMaintenance, *p.Status)
			return resource.NewResource(id, resource.Spec{
				Kind: resource.KindPool, Name: "Lagoon", Capacity: 40,
				Status: *p.Status, HourlyRate: money.FromCents(1000),
			}, time.Now())
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/resources/"+id.String(),
		map[string]any{"status": "maintenance"}, staffToken)

	var body queries.ResourceView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("maintenance", body.Status)
	s.Equal("10.00", body.HourlyRate)
}

func (s *ResourceHandlerTestSuite) TestDelete() {
	id := uuid.New()
	s.resourceCmds.EXPECT().DeleteResource(gomock.Any(), id).Return(resource.ErrResourceNotFound)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/resources/"+id.String(), nil, staffToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "resource not found")
}

func (s *ResourceHandlerTestSuite) TestSetWeeklyRate() {
	id := uuid.New()

	s.Run("success", func() {
		s.resourceCmds.EXPECT().SetWeeklyRate(gomock.Any(), id, time.Friday, money.FromCents(19999)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/resources/"+id.String()+"/rates/friday",
			map[string]any{"price": 199.99}, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown weekday", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/resources/"+id.String()+"/rates/someday",
			map[string]any{"price": 10}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid weekday name")
	})

	s.Run("error: rooms only", func() {
		s.resourceCmds.EXPECT().SetWeeklyRate(gomock.Any(), id, time.Monday, gomock.Any()).Return(commands.ErrWeeklyRatesRoomsOnly)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/resources/"+id.String()+"/rates/Monday",
			map[string]any{"price": 10}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "weekly rates apply to rooms only")
	})
}

func (s *ResourceHandlerTestSuite) TestAddOverride() {
	id := uuid.New()
	url := "/api/resources/" + id.String() + "/overrides"

	s.Run("success: dates are whole days", func() {
		start := time.Date(2030, 12, 24, 0, 0, 0, 0, time.UTC)
		end := time.Date(2030, 12, 26, 0, 0, 0, 0, time.UTC)
		s.resourceCmds.EXPECT().AddOverride(gomock.Any(), id, start, end, money.FromCents(30000)).
			DoAndReturn(func(_ context.Context, rid uuid.UUID, from, to time.Time, price money.Money) (resource.Override, error) {
				return resource.NewOverride(uuid.New(), rid, from, to, price, time.Now())
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start_date": "2030-12-24", "end_date": "2030-12-26", "price": 300}, staffToken)

		var body queries.OverrideView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("2030-12-24", body.StartDate)
		s.Equal("2030-12-26", body.EndDate)
		s.Equal("300.00", body.Price)
	})

	s.Run("error: overlapping window", func() {
		s.resourceCmds.EXPECT().AddOverride(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(resource.Override{}, resource.ErrOverlappingOverride)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start_date": "2030-12-25", "end_date": "2030-12-25", "price": 300}, staffToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnprocessableEntity, "integrity")
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start_date": "24/12/2030", "end_date": "2030-12-26", "price": 300}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ResourceHandlerTestSuite) TestQueries() {
	id := uuid.New()

	s.Run("list passes the kind filter", func() {
		s.resourceQ.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f shared.ResourceFilter) ([]*queries.ResourceView, error) {
				s.Require().NotNil(f.Kind)
				s.Equal(resource.KindPool, *f.Kind)
				s.Nil(f.RoomTypeID)
				return []*queries.ResourceView{}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/resources?kind=pool", nil, customerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("rate card", func() {
		s.resourceQ.EXPECT().Rates(gomock.Any(), id).Return(&queries.RateCardView{
			ResourceID: id,
			Weekly:     map[string]string{"saturday": "250.00"},
			Overrides:  []queries.OverrideView{},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/resources/"+id.String()+"/rates", nil, customerToken)

		var body queries.RateCardView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("250.00", body.Weekly["saturday"])
	})

	s.Run("get requires a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/resources/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
