package servant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velkorra/chaldea/internal/platform/respond"
)

func (handler *Handler) registerReportRoutes(router chi.Router) {
	router.Get("/level_analys", handler.levelStatistics)
	router.Get("/summoned_servants", handler.summonedServants)
	router.Get("/top_servants", handler.topServants)
	router.Get("/female_servants_descriptions", handler.femaleDescriptions)
	router.Get("/all_localization", handler.allLocalizations)
}

func (handler *Handler) levelStatistics(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.LevelStatistics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) summonedServants(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.SummonedServants(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rows)
}

func (handler *Handler) topServants(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.TopServantsPerMaster(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rows)
}

func (handler *Handler) femaleDescriptions(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.FemaleDescriptions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rows)
}

func (handler *Handler) allLocalizations(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.AllLocalizations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rows)
}
