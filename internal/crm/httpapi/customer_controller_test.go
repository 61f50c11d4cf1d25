package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi"
	"brokerage-crm/internal/infra/httpserver"
	mockusecases "brokerage-crm/test/unit/doubles/crm/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CustomerController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockCustomerService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockCustomerService(ctrl)
		router = http.NewServeMux()
		httpapi.NewCustomerController(service).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listCustomers", func() {
		It("should paginate the customers", func() {
			service.EXPECT().All(gomock.Any()).Return([]domain.Customer{
				{ID: "c-1", Name: "김민수"},
				{ID: "c-2", Name: "이영희"},
				{ID: "c-3", Name: "박지성"},
			}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/customers?page=2&limit=2", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(3))
			Expect(response.Pagination.TotalPages).To(Equal(2))
			data, ok := response.Data.([]any)
			Expect(ok).To(BeTrue())
			Expect(data).To(HaveLen(1))
			Expect(data[0].(map[string]any)["id"]).To(Equal("c-3"))
		})

		It("should hide store failures behind a generic message", func() {
			service.EXPECT().All(gomock.Any()).Return(nil, errors.New("connection refused"))

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/customers", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).To(ContainSubstring("failed to list customers"))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("connection refused"))
		})
	})

	Context("createCustomer", func() {
		It("should create a customer with the defaults of the builder", func() {
			service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, c domain.Customer) error {
				Expect(c.ID).NotTo(BeEmpty())
				Expect(c.Name).To(Equal("김민수"))
				Expect(c.Status).To(Equal(domain.CustomerStatusNew))
				Expect(c.IsFavorite).To(BeTrue())
				return nil
			})

			body := strings.NewReader(`{"name":"김민수","phone":"010-1234-5678","is_favorite":true}`)
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/customers", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["name"]).To(Equal("김민수"))
			Expect(response["status"]).To(Equal("신규"))
		})

		It("should reject a customer without a name", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/customers", strings.NewReader(`{"phone":"010"}`)))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring(domain.ErrNameRequired.Error()))
		})

		It("should reject malformed bodies", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/customers", strings.NewReader(`{"name":`)))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("getCustomer", func() {
		It("should answer 404 for unknown customers", func() {
			service.EXPECT().Get(gomock.Any(), domain.ID("nope")).Return(domain.Customer{}, domain.ErrCustomerNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/customers/nope", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("updateCustomer", func() {
		It("should pass the path id to the service", func() {
			service.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, c domain.Customer) (domain.Customer, error) {
				Expect(c.ID).To(Equal(domain.ID("c-1")))
				Expect(c.Status).To(Equal(domain.CustomerStatusOnHold))
				c.Version = 2
				return c, nil
			})

			body := strings.NewReader(`{"name":"김민수","status":"보류"}`)
			router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/v1/customers/c-1", body))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"version":2`))
		})
	})

	Context("deleteCustomer", func() {
		It("should answer 204", func() {
			service.EXPECT().Delete(gomock.Any(), domain.ID("c-1")).Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/v1/customers/c-1", nil))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
