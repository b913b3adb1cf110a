package servant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velkorra/chaldea/internal/media"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	requestutil "github.com/velkorra/chaldea/internal/platform/request"
	"github.com/velkorra/chaldea/internal/platform/respond"
)

type Handler struct {
	service *Service
	media   *media.Store
}

func NewHandler(service *Service, media *media.Store) *Handler {
	return &Handler{service: service, media: media}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/servants", handler.listServants)
	router.Post("/servants", handler.createServant)
	router.Get("/servants/{id}", handler.getServant)
	router.Put("/servants/{id}", handler.updateServant)
	router.Delete("/servants/{id}", handler.deleteServant)
	router.Get("/servants_list", handler.listWithLocalizations)

	router.Get("/name/{servant_id}/{language}", handler.getName)
	router.Get("/localization/{servant_id}", handler.getLocalization)
	router.Post("/localization", handler.setLocalization)
	router.Put("/localization", handler.setLocalization)

	router.Get("/skill/{servant_id}", handler.listServantSkills)
	router.Post("/servants/{id}/skills/{skill_id}", handler.assignSkill)
	router.Delete("/servants/{id}/skills/{skill_id}", handler.unassignSkill)

	router.Get("/np/all", handler.listPhantasms)
	router.Get("/np/{servant_id}", handler.getPhantasm)
	router.Post("/np", handler.createPhantasm)
	router.Put("/np", handler.updatePhantasm)
	router.Delete("/np/{id}", handler.deletePhantasm)

	handler.registerMediaRoutes(router)
	handler.registerReportRoutes(router)
}

func (handler *Handler) listServants(writer http.ResponseWriter, request *http.Request) {
	servants, err := handler.service.ListServants(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, servants)
}

func (handler *Handler) listWithLocalizations(writer http.ResponseWriter, request *http.Request) {
	servants, err := handler.service.ListWithLocalizations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, servants)
}

func (handler *Handler) getServant(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.GetServant(request.Context(), servantID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) createServant(writer http.ResponseWriter, request *http.Request) {
	var input Servant
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateServant(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

// updateServant reads a form-encoded partial update, so curl-style clients
// can patch single fields without building JSON.
func (handler *Handler) updateServant(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	update, err := decodeServantForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.UpdateServant(request.Context(), servantID, update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) deleteServant(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteServant(request.Context(), servantID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// getName serves the localized display name, falling back to the literal
// "none" when the servant has no localization at all.
func (handler *Handler) getName(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	language := requestutil.Param(request, "language")

	name, err := handler.service.GetName(request.Context(), servantID, language)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			respond.OK(writer, "none")
			return
		}
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"name": name})
}

func (handler *Handler) getLocalization(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	language := request.URL.Query().Get("language")

	loc, err := handler.service.GetLocalization(request.Context(), servantID, language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, loc)
}

// setLocalization serves both the create and the update route: the write is
// an upsert either way. Identity comes from the query string, text fields
// from the form body.
func (handler *Handler) setLocalization(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntQuery(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	language := request.URL.Query().Get("language")

	if err := requestutil.ParseAnyForm(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := LocalizationInput{
		Name:            requestutil.FormValue(request, "name"),
		Description:     requestutil.FormValue(request, "description"),
		History:         requestutil.FormValue(request, "history"),
		PrototypePerson: requestutil.FormValue(request, "prototype_person"),
		Illustrator:     requestutil.FormValue(request, "illustrator"),
		VoiceActor:      requestutil.FormValue(request, "voice_actor"),
		Temper:          requestutil.FormValue(request, "temper"),
		Intro:           requestutil.FormValue(request, "intro"),
	}

	loc, err := handler.service.SetLocalization(request.Context(), servantID, language, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, loc)
}

func (handler *Handler) listServantSkills(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	skills, err := handler.service.ListServantSkills(request.Context(), servantID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, skills)
}

func (handler *Handler) assignSkill(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	skillID, err := requestutil.IntParam(request, "skill_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AssignSkill(request.Context(), servantID, skillID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]int{"servant_id": servantID, "skill_id": skillID})
}

func (handler *Handler) unassignSkill(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	skillID, err := requestutil.IntParam(request, "skill_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UnassignSkill(request.Context(), servantID, skillID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listPhantasms(writer http.ResponseWriter, request *http.Request) {
	phantasms, err := handler.service.ListPhantasms(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, phantasms)
}

func (handler *Handler) getPhantasm(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	np, err := handler.service.GetPhantasm(request.Context(), servantID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, np)
}

func (handler *Handler) createPhantasm(writer http.ResponseWriter, request *http.Request) {
	var input NoblePhantasm
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePhantasm(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePhantasm(writer http.ResponseWriter, request *http.Request) {
	var input NoblePhantasm
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePhantasm(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePhantasm(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePhantasm(request.Context(), servantID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
