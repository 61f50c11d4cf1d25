package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"
	mockusecases "brokerage-crm/test/unit/doubles/crm/usecases"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/mock/gomock"
)

type testFrame struct {
	Type     string               `json:"type" msgpack:"type"`
	View     string               `json:"view" msgpack:"view"`
	Settings *domain.ViewSettings `json:"settings" msgpack:"settings"`
	State    *domain.ViewState    `json:"state" msgpack:"state"`
	Records  []map[string]any     `json:"records" msgpack:"records"`
	Error    string               `json:"error" msgpack:"error"`
}

var _ = Describe("ViewWebSocketController", func() {
	var (
		ctrl       *gomock.Controller
		views      *mockusecases.MockViewService
		broker     *async.LocalBroker
		controller *httpapi.ViewWebSocketController
		server     *httptest.Server
		wsURL      string
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		views = mockusecases.NewMockViewService(ctrl)
		broker = async.NewLocalBroker()
		controller = httpapi.NewViewWebSocketController(views, broker, time.UTC)

		router := http.NewServeMux()
		controller.AddRoutes(router)
		server = httptest.NewServer(router)
		wsURL = strings.Replace(server.URL, "http", "ws", 1) + "/ws/views"
	})

	AfterEach(func() {
		controller.Shutdown()
		server.Close()
		broker.Stop()
		ctrl.Finish()
	})

	readJSON := func(conn *websocket.Conn) testFrame {
		var frame testFrame
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		Expect(conn.ReadJSON(&frame)).To(Succeed())
		return frame
	}

	It("should greet clients with their view state", func() {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		frame := readJSON(conn)
		Expect(frame.Type).To(Equal("state"))
		Expect(frame.State.Mode).To(Equal(domain.ViewModeList))
	})

	It("should push a watched view and push it again on invalidation", func() {
		gomock.InOrder(
			views.EXPECT().Customers(gomock.Any(), usecases.CustomerViewQuery{Filter: domain.CustomerFilterAll}).
				Return([]domain.Customer{{ID: "c-1", Name: "김민수"}}, nil),
			views.EXPECT().Customers(gomock.Any(), usecases.CustomerViewQuery{Filter: domain.CustomerFilterAll}).
				Return([]domain.Customer{{ID: "c-1", Name: "김민수"}, {ID: "c-2", Name: "이영희"}}, nil),
		)

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		readJSON(conn)

		Expect(conn.WriteJSON(map[string]string{"type": "watch", "view": "customers"})).To(Succeed())
		frame := readJSON(conn)
		Expect(frame.Type).To(Equal("view"))
		Expect(frame.View).To(Equal("customers"))
		Expect(frame.Records).To(HaveLen(1))

		Expect(broker.Publish(context.Background(), usecases.ViewsTopic, async.BrokerMessage{
			Event: usecases.EventViewsInvalidated,
		})).To(Succeed())

		frame = readJSON(conn)
		Expect(frame.Records).To(HaveLen(2))
	})

	It("should toggle the sort of a view", func() {
		gomock.InOrder(
			views.EXPECT().Contracts(gomock.Any(), usecases.ContractViewQuery{Filter: domain.ContractFilterAll}).Return(nil, nil),
			views.EXPECT().Contracts(gomock.Any(), usecases.ContractViewQuery{
				Filter: domain.ContractFilterAll,
				Sort:   domain.SortState{Key: "building_name", Direction: domain.SortDescending},
			}).Return(nil, nil),
			views.EXPECT().Contracts(gomock.Any(), usecases.ContractViewQuery{
				Filter: domain.ContractFilterAll,
				Sort:   domain.SortState{Key: "building_name", Direction: domain.SortAscending},
			}).Return(nil, nil),
		)

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		readJSON(conn)

		Expect(conn.WriteJSON(map[string]string{"type": "watch", "view": "contracts"})).To(Succeed())
		readJSON(conn)
		Expect(conn.WriteJSON(map[string]string{"type": "toggle_sort", "view": "contracts", "key": "building_name"})).To(Succeed())
		readJSON(conn)
		Expect(conn.WriteJSON(map[string]string{"type": "toggle_sort", "view": "contracts", "key": "building_name"})).To(Succeed())

		frame := readJSON(conn)
		Expect(frame.Settings.Sort.Direction).To(Equal(domain.SortAscending))
		Expect(frame.Records).To(BeEmpty())
	})

	It("should refuse modes that need a selection", func() {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		readJSON(conn)

		Expect(conn.WriteJSON(map[string]string{"type": "set_mode", "mode": "edit", "kind": "customer"})).To(Succeed())
		frame := readJSON(conn)
		Expect(frame.Type).To(Equal("error"))
		Expect(frame.Error).To(ContainSubstring(domain.ErrSelectionRequired.Error()))

		Expect(conn.WriteJSON(map[string]string{"type": "select", "kind": "customer", "id": "c-1"})).To(Succeed())
		Expect(readJSON(conn).State.Selection).To(HaveKeyWithValue(domain.EntityCustomer, domain.ID("c-1")))

		Expect(conn.WriteJSON(map[string]string{"type": "set_mode", "mode": "edit", "kind": "customer"})).To(Succeed())
		frame = readJSON(conn)
		Expect(frame.State.Mode).To(Equal(domain.ViewModeEdit))
		Expect(frame.State.ModeKind).To(Equal(domain.EntityCustomer))
	})

	It("should reject unknown views", func() {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		readJSON(conn)

		Expect(conn.WriteJSON(map[string]string{"type": "watch", "view": "buildings"})).To(Succeed())
		frame := readJSON(conn)
		Expect(frame.Type).To(Equal("error"))
		Expect(frame.Error).To(ContainSubstring("unknown view"))
	})

	It("should speak msgpack when the client negotiates it", func() {
		views.EXPECT().Rows(gomock.Any(), usecases.RowViewQuery{TableID: "t-1", Filter: domain.RowFilterAll}).
			Return([]domain.DynamicTableRow{{ID: "r-1", TableID: "t-1", Fields: map[string]any{"name": "A"}}}, nil)

		dialer := websocket.Dialer{Subprotocols: []string{"msgpack"}}
		conn, _, err := dialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()
		Expect(conn.Subprotocol()).To(Equal("msgpack"))

		readMsgpack := func() testFrame {
			conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			messageType, data, err := conn.ReadMessage()
			Expect(err).NotTo(HaveOccurred())
			Expect(messageType).To(Equal(websocket.BinaryMessage))
			var frame testFrame
			Expect(msgpack.Unmarshal(data, &frame)).To(Succeed())
			return frame
		}
		Expect(readMsgpack().Type).To(Equal("state"))

		command, err := msgpack.Marshal(map[string]string{"type": "watch", "view": domain.TableView("t-1")})
		Expect(err).NotTo(HaveOccurred())
		Expect(conn.WriteMessage(websocket.BinaryMessage, command)).To(Succeed())

		frame := readMsgpack()
		Expect(frame.View).To(Equal("tables/t-1"))
		Expect(frame.Records).To(HaveLen(1))
		Expect(frame.Records[0]["id"]).To(Equal("r-1"))
	})
})
