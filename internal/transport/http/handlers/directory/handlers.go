package directoryhandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"adminrec/internal/domain/auth"
	"adminrec/internal/domain/directory"
	"adminrec/internal/requestctx"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/middleware"
)

type Handler struct {
	Store *directory.Store
}

func NewHandler(store *directory.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermManageEmployees))
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/{id}", h.handleGetEmployee)
		r.Put("/{id}", h.handleUpdateEmployee)
		r.Delete("/{id}", h.handleDeleteEmployee)
	})

	r.Route("/jobpositions", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermManagePositions))
		r.Get("/", h.handleListPositions)
		r.Post("/", h.handleCreatePosition)
		r.Put("/{id}", h.handleUpdatePosition)
		r.Delete("/{id}", h.handleDeletePosition)
	})

	r.Route("/sectors", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermConsultSector))
		r.Get("/", h.handleListSectorDetails)
		r.Get("/{id}", h.handleGetSectorDetail)
	})

	r.Route("/supervisors", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermAssignSupervisors))
		r.Get("/", h.handleListSectorDetails)
		r.Get("/{id}", h.handleGetSectorDetail)
		r.Put("/{sectorId}", h.handleAssignSupervisors)
	})

	r.With(middleware.RequirePermission(auth.PermManageEmployees)).
		Get("/employeehistory/{employeeId}", h.handleEmployeeHistory)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// serverError logs the cause and answers with the generic envelope.
func serverError(w http.ResponseWriter, r *http.Request, action string, err error) {
	slog.Error(action, "err", err, "requestId", requestctx.GetRequestID(r.Context()))
	api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func notFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
