package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi"
	mockusecases "brokerage-crm/test/unit/doubles/crm/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("MeetingController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockMeetingService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockMeetingService(ctrl)
		router = http.NewServeMux()
		httpapi.NewMeetingController(service, time.UTC).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should list the meetings of one customer", func() {
		service.EXPECT().FindAll(gomock.Any(), domain.ID("c-1")).Return([]domain.Meeting{
			{ID: "m-1", CustomerID: "c-1"},
		}, nil)

		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/meetings?customer_id=c-1", nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var meetings []map[string]any
		Expect(json.Unmarshal(recorder.Body.Bytes(), &meetings)).To(Succeed())
		Expect(meetings).To(HaveLen(1))
		Expect(meetings[0]["customer_id"]).To(Equal("c-1"))
	})

	It("should create a meeting on the given day", func() {
		service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, m domain.Meeting) error {
			Expect(m.Date.Time).To(Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
			Expect(m.CustomerID).To(Equal(domain.ID("c-1")))
			return nil
		})

		body := strings.NewReader(`{"customer_id":"c-1","date":"2026-10-20","place":"역삼역"}`)
		router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/meetings", body))

		Expect(recorder.Code).To(Equal(http.StatusCreated))
	})

	It("should require a customer", func() {
		body := strings.NewReader(`{"date":"2026-10-20"}`)
		router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/meetings", body))

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		Expect(recorder.Body.String()).To(ContainSubstring(domain.ErrCustomerIDRequired.Error()))
	})
})

var _ = Describe("ActivityController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockActivityService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockActivityService(ctrl)
		router = http.NewServeMux()
		httpapi.NewActivityController(service, time.UTC).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should append a follow-up to the activity", func() {
		service.EXPECT().AddFollowUp(gomock.Any(), domain.ID("a-1"), gomock.Any()).
			DoAndReturn(func(_ any, id domain.ID, f domain.FollowUp) (domain.Activity, error) {
				Expect(f.Author).To(Equal("박중개"))
				return domain.Activity{ID: id, CustomerID: "c-1", FollowUps: []domain.FollowUp{f}}, nil
			})

		body := strings.NewReader(`{"author":"박중개","content":"회신 완료","date":"2026-10-19"}`)
		router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/activities/a-1/follow-ups", body))

		Expect(recorder.Code).To(Equal(http.StatusCreated))
		var response map[string]any
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response["follow_ups"]).To(HaveLen(1))
	})

	It("should answer 404 for unknown activities", func() {
		service.EXPECT().Delete(gomock.Any(), domain.ID("nope")).Return(domain.ErrActivityNotFound)

		router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/v1/activities/nope", nil))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})
})

var _ = Describe("BuildingController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockBuildingService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockBuildingService(ctrl)
		router = http.NewServeMux()
		httpapi.NewBuildingController(service).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should create a building", func() {
		service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		body := strings.NewReader(`{"name":"한빛빌딩","address":"서울 강남구","floors":12}`)
		router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/buildings", body))

		Expect(recorder.Code).To(Equal(http.StatusCreated))
		Expect(recorder.Body.String()).To(ContainSubstring(`"floors":12`))
	})

	It("should update the building named by the path", func() {
		service.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, b domain.Building) (domain.Building, error) {
			Expect(b.ID).To(Equal(domain.ID("b-1")))
			return b, nil
		})

		router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/v1/buildings/b-1", strings.NewReader(`{"name":"새빛빌딩"}`)))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})
})
