//go:build unit

package api_test

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/handler"
	"resort-engine/internal/handler/api"
	"resort-engine/internal/handler/middleware"
	"resort-engine/internal/pkg/config"
	"resort-engine/internal/pkg/jwt"
	commandsmock "resort-engine/tests/mock/commands"
	queriesmock "resort-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	customerToken = "customer-token"
	staffToken    = "staff-token"
)

// stubTokens accepts exactly two tokens, one per role.
type stubTokens struct {
	customerID uuid.UUID
	staffID    uuid.UUID
}

func (s stubTokens) ValidateToken(token string) (*jwt.Claims, error) {
	switch token {
	case customerToken:
		return &jwt.Claims{CustomerID: s.customerID, Role: customer.RoleCustomer.String()}, nil
	case staffToken:
		return &jwt.Claims{CustomerID: s.staffID, Role: customer.RoleStaff.String()}, nil
	default:
		return nil, errors.New("token is malformed")
	}
}

// routerSuite serves the real router with every use case mocked.
type routerSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller

	customerID uuid.UUID
	staffID    uuid.UUID

	reservationCmds *commandsmock.MockReservationCommands
	billingCmds     *commandsmock.MockBillingCommands
	resourceCmds    *commandsmock.MockResourceCommands
	customerCmds    *commandsmock.MockCustomerCommands
	reservationQ    *queriesmock.MockReservationQueries
	invoiceQ        *queriesmock.MockInvoiceQueries
	resourceQ       *queriesmock.MockResourceQueries
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())

	s.customerID = uuid.New()
	s.staffID = uuid.New()

	s.reservationCmds = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.billingCmds = commandsmock.NewMockBillingCommands(s.mockCtrl)
	s.resourceCmds = commandsmock.NewMockResourceCommands(s.mockCtrl)
	s.customerCmds = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.reservationQ = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.invoiceQ = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	s.resourceQ = queriesmock.NewMockResourceQueries(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handlers := handler.Handlers{
		Customer:    api.NewCustomerHandler(s.customerCmds),
		Reservation: api.NewReservationHandler(s.reservationCmds, s.reservationQ),
		Billing:     api.NewBillingHandler(s.billingCmds, s.invoiceQ),
		Resource:    api.NewResourceHandler(s.resourceCmds, s.resourceQ, time.UTC),
	}
	auth := middleware.NewAuthMiddleware(stubTokens{customerID: s.customerID, staffID: s.staffID})
	handler.NewRouter(s.router, config.NewTestConfig(), logger, nil, handlers, auth)
}

func (s *routerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *routerSuite) poolVisit(customerID uuid.UUID) *reservation.Reservation {
	start := time.Date(2030, 7, 1, 10, 0, 0, 0, time.UTC)
	return reservation.Reconstruct(reservation.Snapshot{
		ID:         uuid.New(),
		Kind:       reservation.KindPoolVisit,
		CustomerID: customerID,
		ResourceID: uuid.New(),
		Start:      start,
		Occupancy:  3,
		Status:     reservation.StatusPending,
		TotalPrice: money.Zero(),
		Version:    1,
		CreatedAt:  start.Add(-24 * time.Hour),
		UpdatedAt:  start.Add(-24 * time.Hour),
	})
}
