//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/shared/money"
	resdto "resort-engine/internal/handler/dto/response"
	"resort-engine/internal/usecase/queries"
	"resort-engine/internal/usecase/shared"
	"resort-engine/tests/common/httptest"
	"resort-engine/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BillingHandlerTestSuite struct {
	routerSuite
}

func TestBillingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func (s *BillingHandlerTestSuite) TestPay() {
	booking, pool := uuid.New(), uuid.New()
	reqBody := map[string]any{
		"payment_method": "Visa Card",
		"invoices": []map[string]any{
			{"invoice_id": booking.String(), "invoice_type": "Booking", "amount": 400},
			{"invoice_id": pool.String(), "invoice_type": "PoolVisit", "amount": 20.5},
		},
	}

	s.Run("success: batch reaches the command", func() {
		paidAt := time.Date(2030, 7, 1, 12, 0, 0, 0, time.UTC)
		s.billingCmds.EXPECT().PayInvoices(gomock.Any(), shared.CustomerActor(s.customerID), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, b billing.Batch) (*billing.Summary, error) {
				s.Equal(billing.MethodVisaCard, b.Method())
				s.Equal(uuid.Nil, b.CustomerID())
				s.Require().Len(b.Items(), 2)
				s.Equal(billing.InvoiceRef{ID: pool, Type: billing.InvoicePoolVisit}, b.Items()[1].Ref)
				s.Equal(money.FromCents(2050), b.Items()[1].Amount)
				return &billing.Summary{
					PaymentIDs: []uuid.UUID{uuid.New(), uuid.New()},
					Count:      2,
					Total:      money.FromCents(42050),
					Method:     b.Method(),
					PaidAt:     paidAt,
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments", reqBody, customerToken)

		var body resdto.PaymentSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(2, body.Count)
		s.Equal("420.50", body.TotalAmount)
		s.Equal("visa card", body.PaymentMethod)
		s.True(paidAt.Equal(body.PaidAt))
	})

	s.Run("error: malformed batches never reach the command", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "unknown method", mutate: testutil.Field("payment_method", "cheque")},
			{name: "missing method", mutate: testutil.Field("payment_method", nil)},
			{name: "empty invoices", mutate: testutil.Field("invoices", []any{})},
			{name: "unknown invoice type", mutate: testutil.Field("invoices", []map[string]any{
				{"invoice_id": booking.String(), "invoice_type": "SpaVisit", "amount": 10},
			})},
			{name: "zero amount", mutate: testutil.Field("invoices", []map[string]any{
				{"invoice_id": booking.String(), "invoice_type": "Booking", "amount": 0},
			})},
			{name: "duplicate invoice", mutate: testutil.Field("invoices", []map[string]any{
				{"invoice_id": booking.String(), "invoice_type": "Booking", "amount": 10},
				{"invoice_id": booking.String(), "invoice_type": "Booking", "amount": 10},
			})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments", body, customerToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: settlement failures", func() {
		testCases := []struct {
			name string
			err  error
			code int
		}{
			{name: "already paid", err: reservation.ErrAlreadyPaid, code: http.StatusConflict},
			{name: "amount mismatch", err: reservation.ErrAmountMismatch, code: http.StatusBadRequest},
			{name: "foreign invoice", err: billing.ErrInvoiceNotFound, code: http.StatusNotFound},
			{name: "unknown customer", err: customer.ErrCustomerNotFound, code: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.billingCmds.EXPECT().PayInvoices(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments", reqBody, customerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
			})
		}
	})
}

func (s *BillingHandlerTestSuite) TestInvoices() {
	s.Run("customer lists own open invoices", func() {
		s.invoiceQ.EXPECT().ListInvoices(gomock.Any(), shared.CustomerActor(s.customerID), uuid.Nil, false).
			Return([]queries.InvoiceView{{InvoiceID: uuid.New(), InvoiceType: "Booking", Amount: "400.00"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/invoices", nil, customerToken)

		var body []queries.InvoiceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("400.00", body[0].Amount)
	})

	s.Run("staff names the customer", func() {
		s.invoiceQ.EXPECT().ListInvoices(gomock.Any(), shared.StaffActor(s.staffID), s.customerID, true).
			Return([]queries.InvoiceView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/invoices?paid=true&customer_id="+s.customerID.String(), nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: customer_id must be a uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/invoices?customer_id=42", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *BillingHandlerTestSuite) TestPayments() {
	s.invoiceQ.EXPECT().ListPayments(gomock.Any(), shared.CustomerActor(s.customerID), uuid.Nil).
		Return([]queries.PaymentView{{ID: uuid.New(), Method: "cash", Amount: "90.00"}}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments", nil, customerToken)

	var body []queries.PaymentView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("cash", body[0].Method)
}
