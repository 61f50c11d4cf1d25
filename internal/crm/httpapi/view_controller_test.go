package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/httpserver"
	mockusecases "brokerage-crm/test/unit/doubles/crm/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ViewController", func() {
	var (
		ctrl       *gomock.Controller
		views      *mockusecases.MockViewService
		reconciler *mockusecases.MockReconciliationService
		router     *http.ServeMux
		recorder   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		views = mockusecases.NewMockViewService(ctrl)
		reconciler = mockusecases.NewMockReconciliationService(ctrl)
		router = http.NewServeMux()
		httpapi.NewViewController(views, reconciler, nil).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("customer view", func() {
		It("should default to the pass-through filter without a sort", func() {
			views.EXPECT().Customers(gomock.Any(), usecases.CustomerViewQuery{
				Filter: domain.CustomerFilterAll,
			}).Return([]domain.Customer{{ID: "c-1"}}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/views/customers", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(1))
		})

		It("should forward the filter, progress and sort", func() {
			views.EXPECT().Customers(gomock.Any(), usecases.CustomerViewQuery{
				Filter:   domain.CustomerFilter("진행중"),
				Progress: "2차미팅",
				Sort:     domain.SortState{Key: "name", Direction: domain.SortDescending},
			}).Return(nil, nil)

			query := url.Values{"filter": {"진행중"}, "progress": {"2차미팅"}, "sort": {"name"}}
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/views/customers?"+query.Encode(), nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should reject unknown sort directions", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/views/customers?sort=name&dir=up", nil))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("contract view", func() {
		It("should sort ascending when asked", func() {
			views.EXPECT().Contracts(gomock.Any(), usecases.ContractViewQuery{
				Filter: domain.ContractFilter("금월잔금"),
				Sort:   domain.SortState{Key: "balance_date", Direction: domain.SortAscending},
			}).Return([]domain.Contract{{ID: "k-1"}, {ID: "k-2"}}, nil)

			query := url.Values{"filter": {"금월잔금"}, "sort": {"balance_date"}, "dir": {"asc"}, "limit": {"1"}}
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/views/contracts?"+query.Encode(), nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.TotalPages).To(Equal(2))
		})
	})

	Context("row view", func() {
		It("should answer 404 for unknown tables", func() {
			views.EXPECT().Rows(gomock.Any(), usecases.RowViewQuery{
				TableID: "t-9",
				Filter:  domain.RowFilterAll,
			}).Return(nil, domain.ErrTableNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/views/tables/t-9/rows", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("reconciliations", func() {
		It("should return the applied updates", func() {
			reconciler.EXPECT().Reconcile(gomock.Any()).Return(domain.StatusUpdates{
				CustomerUpdates: []domain.CustomerStatusUpdate{
					{CustomerID: "c-1", From: domain.CustomerStatusNew, To: domain.CustomerStatusInProgress},
				},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/reconciliations", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var updates domain.StatusUpdates
			Expect(json.Unmarshal(recorder.Body.Bytes(), &updates)).To(Succeed())
			Expect(updates.CustomerUpdates).To(HaveLen(1))
			Expect(updates.CustomerUpdates[0].To).To(Equal(domain.CustomerStatusInProgress))
		})

		It("should report failed passes as server errors", func() {
			reconciler.EXPECT().Reconcile(gomock.Any()).Return(domain.StatusUpdates{}, errors.New("locked"))

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/reconciliations", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
