package httpapi

import (
	"log/slog"
	"net/http"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/httpapi/internal"
	"brokerage-crm/internal/crm/usecases"
	"brokerage-crm/internal/infra/httpserver"
)

const (
	createTableErrMessage = "failed to create table"
	getTableErrMessage    = "failed to get table"
	listTablesErrMessage  = "failed to list tables"
	updateTableErrMessage = "failed to update table"
	deleteTableErrMessage = "failed to delete table"
	createRowErrMessage   = "failed to create row"
	listRowsErrMessage    = "failed to list rows"
	updateRowErrMessage   = "failed to update row"
	deleteRowErrMessage   = "failed to delete row"
)

func NewTableController(service usecases.TableService) *TableController {
	return &TableController{
		service: service,
	}
}

var _ httpserver.Controller = (*TableController)(nil)

type TableController struct {
	service usecases.TableService
}

func (c *TableController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/tables", c.listTables())
	router.Handle("POST /v1/tables", c.createTable())
	router.Handle("GET /v1/tables/{id}", c.getTable())
	router.Handle("PUT /v1/tables/{id}", c.updateTable())
	router.Handle("DELETE /v1/tables/{id}", c.deleteTable())
	router.Handle("GET /v1/tables/{id}/rows", c.listRows())
	router.Handle("POST /v1/tables/{id}/rows", c.createRow())
	router.Handle("PUT /v1/tables/{id}/rows/{rowID}", c.updateRow())
	router.Handle("DELETE /v1/tables/{id}/rows/{rowID}", c.deleteRow())
}

func (c *TableController) listTables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := c.service.All(r.Context())
		if err != nil {
			replyServiceError(w, err, "listing tables", listTablesErrMessage)
			return
		}

		responses := make([]internal.TableResponse, len(tables))
		for i, table := range tables {
			responses[i] = internal.ToTableResponse(table)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *TableController) createTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TableRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create table request", slog.String("error", err.Error()))
			http.Error(w, createTableErrMessage, http.StatusBadRequest)
			return
		}

		table, err := domain.NewDynamicTableBuilder().
			WithName(body.Name).
			WithColumns(body.ToColumns()...).
			Build()
		if err != nil {
			replyServiceError(w, err, "building table", createTableErrMessage)
			return
		}

		if err := c.service.Create(r.Context(), table); err != nil {
			replyServiceError(w, err, "creating table", createTableErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTableResponse(table))
	}
}

func (c *TableController) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := c.service.Get(r.Context(), domain.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, "getting table", getTableErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTableResponse(table))
	}
}

func (c *TableController) updateTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TableRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update table request", slog.String("error", err.Error()))
			http.Error(w, updateTableErrMessage, http.StatusBadRequest)
			return
		}

		table, err := c.service.Update(r.Context(), domain.DynamicTable{
			ID:      domain.ID(r.PathValue("id")),
			Name:    body.Name,
			Columns: body.ToColumns(),
		})
		if err != nil {
			replyServiceError(w, err, "updating table", updateTableErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTableResponse(table))
	}
}

func (c *TableController) deleteTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.Delete(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, "deleting table", deleteTableErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TableController) listRows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := c.service.Rows(r.Context(), domain.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, "listing rows", listRowsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRowResponses(rows))
	}
}

func (c *TableController) createRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RowRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create row request", slog.String("error", err.Error()))
			http.Error(w, createRowErrMessage, http.StatusBadRequest)
			return
		}

		row, err := c.service.CreateRow(r.Context(), domain.ID(r.PathValue("id")), body.Fields)
		if err != nil {
			replyServiceError(w, err, "creating row", createRowErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRowResponse(row))
	}
}

func (c *TableController) updateRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RowRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update row request", slog.String("error", err.Error()))
			http.Error(w, updateRowErrMessage, http.StatusBadRequest)
			return
		}

		row, err := c.service.UpdateRow(r.Context(), domain.ID(r.PathValue("id")), domain.ID(r.PathValue("rowID")), body.Fields)
		if err != nil {
			replyServiceError(w, err, "updating row", updateRowErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRowResponse(row))
	}
}

func (c *TableController) deleteRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.DeleteRow(r.Context(), domain.ID(r.PathValue("id")), domain.ID(r.PathValue("rowID")))
		if err != nil {
			replyServiceError(w, err, "deleting row", deleteRowErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
