package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/async"
	"brokerage-crm/internal/infra/httpserver"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	msgpackSubprotocol = "msgpack"

	_pingInterval = 54 * time.Second
	_pongWait     = 60 * time.Second
	_writeWait    = 10 * time.Second
	_readLimit    = 4096
)

var errUnknownView = errors.New("unknown view")
var errUnknownCommand = errors.New("unknown command")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	Subprotocols:    []string{msgpackSubprotocol},
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// viewSession is one connected client. Its view state is only touched
// with mu held, which also serializes writes on conn.
type viewSession struct {
	conn    *websocket.Conn
	binary  bool
	mu      sync.Mutex
	state   *domain.ViewState
	watched map[string]struct{}
}

func (s *viewSession) write(frame internal.ViewFrame) error {
	s.conn.SetWriteDeadline(time.Now().Add(_writeWait))
	if !s.binary {
		return s.conn.WriteJSON(frame)
	}

	data, err := msgpack.Marshal(frame)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (s *viewSession) decode(messageType int, data []byte) (internal.ViewCommand, error) {
	var command internal.ViewCommand
	if messageType == websocket.BinaryMessage {
		return command, msgpack.Unmarshal(data, &command)
	}
	return command, json.Unmarshal(data, &command)
}

func NewViewWebSocketController(
	views usecases.ViewService,
	broker async.InternalBroker,
	location *time.Location,
) *ViewWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &ViewWebSocketController{
		views:    views,
		broker:   broker,
		location: location,
		sessions: make(map[*viewSession]struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	subscription, err := broker.Subscribe(usecases.ViewsTopic)
	if err != nil {
		slog.Error("subscribing to view invalidations", slog.String("error", err.Error()))
		return wsc
	}

	wsc.wg.Add(1)
	go wsc.run(subscription)

	return wsc
}

var _ httpserver.Controller = (*ViewWebSocketController)(nil)

// ViewWebSocketController streams derived views to clients. Each client
// drives its own view state with commands and every watched view is pushed
// again whenever the views are invalidated.
type ViewWebSocketController struct {
	views    usecases.ViewService
	broker   async.InternalBroker
	location *time.Location

	sessions    map[*viewSession]struct{}
	sessionsMux sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (wsc *ViewWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/views", wsc.handleWebSocket())
}

func (wsc *ViewWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		session := &viewSession{
			conn:    conn,
			binary:  conn.Subprotocol() == msgpackSubprotocol,
			state:   domain.NewViewState(),
			watched: map[string]struct{}{},
		}

		wsc.sessionsMux.Lock()
		wsc.sessions[session] = struct{}{}
		total := len(wsc.sessions)
		wsc.sessionsMux.Unlock()

		slog.Info("view websocket client registered",
			slog.String("remote_addr", r.RemoteAddr),
			slog.Bool("msgpack", session.binary),
			slog.Int("total_clients", total))

		session.mu.Lock()
		err = session.write(internal.ViewFrame{Type: internal.FrameState, State: session.state})
		session.mu.Unlock()
		if err != nil {
			slog.Error("sending initial view state", slog.String("error", err.Error()))
			wsc.drop(session)
			return
		}

		go wsc.handlePingPong(session)
		go wsc.handleClient(session)
	}
}

func (wsc *ViewWebSocketController) handleClient(session *viewSession) {
	defer wsc.drop(session)

	conn := session.conn
	conn.SetReadLimit(_readLimit)
	conn.SetReadDeadline(time.Now().Add(_pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(_pongWait))
		return nil
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			return
		}

		command, err := session.decode(messageType, data)
		if err != nil {
			wsc.replyError(session, fmt.Errorf("decoding command: %w", err))
			continue
		}

		if err := wsc.apply(session, command); err != nil {
			wsc.replyError(session, err)
		}
	}
}

func (wsc *ViewWebSocketController) apply(session *viewSession, command internal.ViewCommand) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	switch command.Type {
	case internal.CommandWatch:
		if !knownView(command.View) {
			return fmt.Errorf("%w: %s", errUnknownView, command.View)
		}
		session.watched[command.View] = struct{}{}
		return wsc.pushView(session, command.View)

	case internal.CommandSelectFilter:
		if !knownView(command.View) {
			return fmt.Errorf("%w: %s", errUnknownView, command.View)
		}
		session.state.SelectFilter(command.View, command.Filter, command.Progress)
		return wsc.pushView(session, command.View)

	case internal.CommandToggleSort:
		if !knownView(command.View) {
			return fmt.Errorf("%w: %s", errUnknownView, command.View)
		}
		session.state.ToggleSort(command.View, command.Key)
		return wsc.pushView(session, command.View)

	case internal.CommandSelect:
		if err := session.state.Select(domain.EntityKind(command.Kind), domain.ID(command.ID)); err != nil {
			return err
		}
		return session.write(internal.ViewFrame{Type: internal.FrameState, State: session.state})

	case internal.CommandSetMode:
		if err := session.state.SetMode(domain.ViewMode(command.Mode), domain.EntityKind(command.Kind)); err != nil {
			return err
		}
		return session.write(internal.ViewFrame{Type: internal.FrameState, State: session.state})
	}

	return fmt.Errorf("%w: %s", errUnknownCommand, command.Type)
}

// pushView computes view with the session settings and writes it, or an
// error frame when the view cannot be computed. Only write failures are
// returned. The caller holds session.mu.
func (wsc *ViewWebSocketController) pushView(session *viewSession, view string) error {
	settings := session.state.View(view)

	records, err := wsc.compute(wsc.ctx, view, settings)
	if err != nil {
		slog.Warn("computing view", slog.String("view", view), slog.String("error", err.Error()))
		return session.write(internal.ViewFrame{
			Type:  internal.FrameError,
			View:  view,
			Error: err.Error(),
		})
	}

	return session.write(internal.ViewFrame{
		Type:     internal.FrameView,
		View:     view,
		Settings: &settings,
		Records:  records,
	})
}

func (wsc *ViewWebSocketController) compute(ctx context.Context, view string, settings domain.ViewSettings) (any, error) {
	switch view {
	case domain.ViewCustomers:
		customers, err := wsc.views.Customers(ctx, usecases.CustomerViewQuery{
			Filter:   domain.CustomerFilter(settings.Filter),
			Progress: settings.Progress,
			Sort:     settings.Sort,
		})
		if err != nil {
			return nil, err
		}
		return internal.ToCustomerResponses(customers), nil

	case domain.ViewContracts:
		contracts, err := wsc.views.Contracts(ctx, usecases.ContractViewQuery{
			Filter: domain.ContractFilter(settings.Filter),
			Sort:   settings.Sort,
		})
		if err != nil {
			return nil, err
		}
		return internal.ToContractResponses(contracts, wsc.location), nil
	}

	tableID, ok := domain.TableIDFromView(view)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownView, view)
	}
	rows, err := wsc.views.Rows(ctx, usecases.RowViewQuery{
		TableID: tableID,
		Filter:  domain.RowFilter(settings.Filter),
		Sort:    settings.Sort,
	})
	if err != nil {
		return nil, err
	}
	return internal.ToRowResponses(rows), nil
}

func knownView(view string) bool {
	if view == domain.ViewCustomers || view == domain.ViewContracts {
		return true
	}
	_, ok := domain.TableIDFromView(view)
	return ok
}

func (wsc *ViewWebSocketController) replyError(session *viewSession, err error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if werr := session.write(internal.ViewFrame{Type: internal.FrameError, Error: err.Error()}); werr != nil {
		slog.Debug("writing error frame", slog.String("error", werr.Error()))
	}
}

func (wsc *ViewWebSocketController) handlePingPong(session *viewSession) {
	ticker := time.NewTicker(_pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			if !wsc.registered(session) {
				return
			}
			session.mu.Lock()
			session.conn.SetWriteDeadline(time.Now().Add(_writeWait))
			err := session.conn.WriteMessage(websocket.PingMessage, nil)
			session.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (wsc *ViewWebSocketController) run(subscription async.Subscription) {
	defer wsc.wg.Done()
	defer wsc.broker.Unsubscribe(usecases.ViewsTopic, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case msg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			if msg.Event == usecases.EventViewsInvalidated {
				wsc.refresh()
			}
		}
	}
}

// refresh pushes every watched view of every session again.
func (wsc *ViewWebSocketController) refresh() {
	wsc.sessionsMux.RLock()
	sessions := make([]*viewSession, 0, len(wsc.sessions))
	for session := range wsc.sessions {
		sessions = append(sessions, session)
	}
	wsc.sessionsMux.RUnlock()

	for _, session := range sessions {
		session.mu.Lock()
		var failed bool
		for view := range session.watched {
			if err := wsc.pushView(session, view); err != nil {
				slog.Error("writing view frame",
					slog.String("view", view),
					slog.String("error", err.Error()))
				failed = true
				break
			}
		}
		session.mu.Unlock()

		if failed {
			wsc.drop(session)
		}
	}
}

func (wsc *ViewWebSocketController) registered(session *viewSession) bool {
	wsc.sessionsMux.RLock()
	defer wsc.sessionsMux.RUnlock()
	_, ok := wsc.sessions[session]
	return ok
}

func (wsc *ViewWebSocketController) drop(session *viewSession) {
	wsc.sessionsMux.Lock()
	_, ok := wsc.sessions[session]
	delete(wsc.sessions, session)
	total := len(wsc.sessions)
	wsc.sessionsMux.Unlock()

	if !ok {
		return
	}
	session.conn.Close()
	slog.Info("view websocket client unregistered", slog.Int("total_clients", total))
}

func (wsc *ViewWebSocketController) Shutdown() {
	slog.Info("shutting down view websocket controller")
	wsc.cancel()
	wsc.wg.Wait()

	wsc.sessionsMux.Lock()
	for session := range wsc.sessions {
		session.conn.Close()
		delete(wsc.sessions, session)
	}
	wsc.sessionsMux.Unlock()
}
