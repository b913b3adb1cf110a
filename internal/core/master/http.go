package master

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velkorra/chaldea/internal/platform/apperr"
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
	router.Get("/masters", handler.listMasters)
	router.Post("/masters", handler.createMaster)
	router.Get("/masters/{id}", handler.getMaster)
	router.Put("/masters/{id}", handler.updateMaster)
	router.Delete("/masters/{id}", handler.deleteMaster)

	router.Get("/masters/{id}/active_count", handler.activeCount)
}

func (handler *Handler) listMasters(writer http.ResponseWriter, request *http.Request) {
	masters, err := handler.service.ListMasters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, masters)
}

func (handler *Handler) getMaster(writer http.ResponseWriter, request *http.Request) {
	masterID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.GetMaster(request.Context(), masterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) createMaster(writer http.ResponseWriter, request *http.Request) {
	var input Master
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMaster(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

// updateMaster reads a form-encoded partial update. Absent fields keep their
// stored value; a supplied empty nickname is rejected by the service.
func (handler *Handler) updateMaster(writer http.ResponseWriter, request *http.Request) {
	masterID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseAnyForm(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	update := Update{}
	if values, ok := request.Form[FieldNickname]; ok && len(values) > 0 {
		update.Nickname = &values[0]
	}
	if values, ok := request.Form[FieldDisplayName]; ok && len(values) > 0 {
		update.DisplayName = &values[0]
	}
	if values, ok := request.Form[FieldLevel]; ok && len(values) > 0 {
		level, err := strconv.Atoi(values[0])
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("Form field 'level' must be an integer"))
			return
		}
		update.Level = &level
	}

	m, err := handler.service.UpdateMaster(request.Context(), masterID, update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) deleteMaster(writer http.ResponseWriter, request *http.Request) {
	masterID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMaster(request.Context(), masterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) activeCount(writer http.ResponseWriter, request *http.Request) {
	masterID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.service.ActiveContractCount(request.Context(), masterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"count": count})
}
