package contract

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/velkorra/chaldea/internal/platform/request"
	"github.com/velkorra/chaldea/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/contracts/all", handler.listContracts)
	router.Get("/contracts", handler.getContract)
	router.Post("/contracts", handler.createContract)
	router.Delete("/contracts", handler.deleteContract)
}

func (handler *Handler) listContracts(writer http.ResponseWriter, request *http.Request) {
	contracts, err := handler.service.ListContracts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contracts)
}

// getContract addresses a contract by its composite key in the query string.
func (handler *Handler) getContract(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntQuery(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	masterID, err := requestutil.IntQuery(request, "master_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.GetContract(request.Context(), servantID, masterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) createContract(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.CreateContract(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

func (handler *Handler) deleteContract(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntQuery(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	masterID, err := requestutil.IntQuery(request, "master_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteContract(request.Context(), servantID, masterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
