package servant

import (
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velkorra/chaldea/internal/media"
	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/constants"
	requestutil "github.com/velkorra/chaldea/internal/platform/request"
	"github.com/velkorra/chaldea/internal/platform/respond"
)

func (handler *Handler) registerMediaRoutes(router chi.Router) {
	router.Post("/servants/{id}/pictures/", handler.addPicture)
	router.Post("/servants_new", handler.createWithPicture)
	router.Post("/add_image/{servant_id}", handler.addDefaultImage)
	router.Get("/get_image", handler.getImage)
}

func formFile(request *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return nil, nil, apperr.ValidationError("Invalid multipart payload")
	}
	file, header, err := request.FormFile("file")
	if err != nil {
		return nil, nil, apperr.ValidationError("Missing file field")
	}
	return file, header, nil
}

// addPicture uploads an image into an explicit (servant, grade) slot. The
// file lands on disk first; a failed database write leaves an orphan file
// behind, which the next successful upload to the slot reuses.
func (handler *Handler) addPicture(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.GetServant(request.Context(), servantID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, header, err := formFile(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	grade, err := requestutil.FormInt(request, "grade")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	path, err := handler.media.SaveServantPicture(servantID, grade, header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	picture, err := handler.service.AddPicture(request.Context(), servantID, grade, path)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, picture)
}

// createWithPicture registers a servant and stores its grade-1 art in one
// request. The database half is a single transaction.
func (handler *Handler) createWithPicture(writer http.ResponseWriter, request *http.Request) {
	file, header, err := formFile(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	s := &Servant{
		Name:      requestutil.FormValue(request, FieldName),
		Class:     requestutil.FormValue(request, FieldClass),
		Gender:    requestutil.FormValue(request, FieldGender),
		Alignment: requestutil.FormValue(request, FieldAlignment),
	}

	picture, err := handler.service.CreateWithPicture(request.Context(), s, defaultGrade,
		func(servantID int) (string, error) {
			return handler.media.SaveServantPicture(servantID, defaultGrade, header.Filename, file)
		})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"id":      s.ID,
		"servant": s,
		"picture": picture,
	})
}

// addDefaultImage is the convenience upload into the grade-1 slot.
func (handler *Handler) addDefaultImage(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntParam(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.GetServant(request.Context(), servantID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, header, err := formFile(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	path, err := handler.media.SaveServantPicture(servantID, defaultGrade, header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	picture, err := handler.service.AddPicture(request.Context(), servantID, defaultGrade, path)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, picture)
}

func (handler *Handler) getImage(writer http.ResponseWriter, request *http.Request) {
	servantID, err := requestutil.IntQuery(request, "servant_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	grade, err := requestutil.IntQuery(request, "grade")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	path, err := handler.service.GetPicture(request.Context(), servantID, grade)
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

// defaultGrade is the slot used by the convenience uploads.
const defaultGrade = 1
