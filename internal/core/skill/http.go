package skill

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velkorra/chaldea/internal/media"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/constants"
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
	router.Get("/skills", handler.listSkills)
	router.Post("/skills", handler.createSkill)
	router.Put("/skills", handler.updateSkill)
	router.Delete("/skills/{id}", handler.deleteSkill)

	router.Get("/skill_picture/{id}", handler.getIcon)
	router.Post("/add_skill_picture/{id}", handler.addIcon)
}

func (handler *Handler) listSkills(writer http.ResponseWriter, request *http.Request) {
	skills, err := handler.service.ListSkills(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, skills)
}

func (handler *Handler) createSkill(writer http.ResponseWriter, request *http.Request) {
	var input Skill
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSkill(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSkill(writer http.ResponseWriter, request *http.Request) {
	var input Skill
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSkill(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSkill(writer http.ResponseWriter, request *http.Request) {
	skillID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSkill(request.Context(), skillID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// getIcon streams the stored icon file with a content type derived from the
// stored extension.
func (handler *Handler) getIcon(writer http.ResponseWriter, request *http.Request) {
	skillID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	path, err := handler.service.GetIcon(request.Context(), skillID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contentType, err := media.ContentType(path)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.File(writer, request, path, contentType)
}

// addIcon accepts a multipart upload, writes the blob, then records the path.
// The two steps are not atomic: a failed database write can leave an orphan
// file behind.
func (handler *Handler) addIcon(writer http.ResponseWriter, request *http.Request) {
	skillID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file field"))
		return
	}
	defer file.Close()

	path, err := handler.media.SaveSkillIcon(skillID, header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetIcon(request.Context(), skillID, path); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldMessage: "success"})
}
