package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) send(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Buffer
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(reqBody)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return d.client.Do(req)
}

func (d *APIDriver) Healthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) CreateCustomer(fields map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/customers", fields)
}

func (d *APIDriver) GetCustomer(id string) (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/customers/"+id, nil)
}

func (d *APIDriver) UpdateCustomer(id string, fields map[string]any) (*http.Response, error) {
	return d.send(http.MethodPut, "/v1/customers/"+id, fields)
}

func (d *APIDriver) DeleteCustomer(id string) (*http.Response, error) {
	return d.send(http.MethodDelete, "/v1/customers/"+id, nil)
}

func (d *APIDriver) ListCustomers() (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/customers", nil)
}

func (d *APIDriver) CreateMeeting(customerID, date string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/meetings", map[string]any{
		"customer_id": customerID,
		"date":        date,
		"place":       "사무실",
	})
}

func (d *APIDriver) CreateContract(fields map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/contracts", fields)
}

func (d *APIDriver) GetContract(id string) (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/contracts/"+id, nil)
}

func (d *APIDriver) CreateTable(name string, columns []map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/tables", map[string]any{
		"name":    name,
		"columns": columns,
	})
}

func (d *APIDriver) CreateRow(tableID string, fields map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, fmt.Sprintf("/v1/tables/%s/rows", tableID), map[string]any{"fields": fields})
}

// View requests a derived view such as "customers" or "tables/{id}/rows".
func (d *APIDriver) View(name string, query url.Values) (*http.Response, error) {
	path := "/v1/views/" + name
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return d.send(http.MethodGet, path, nil)
}

func (d *APIDriver) Reconcile() (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/reconciliations", nil)
}

func (d *APIDriver) DialViews() (*websocket.Conn, error) {
	wsURL := strings.Replace(d.baseURL, "http", "ws", 1) + "/ws/views"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	return conn, err
}
