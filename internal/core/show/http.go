package show

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/flash"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
)

type Handler struct {
	service *Service
	flashes *flash.Store
}

func NewHandler(service *Service, flashes *flash.Store) *Handler {
	return &Handler{service: service, flashes: flashes}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listShows)
	router.Get("/choices", handler.showChoices)
	router.Post("/", handler.createShow)
	return router
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	shows, err := handler.service.ListUpcoming(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shows)
}

func (handler *Handler) showChoices(writer http.ResponseWriter, request *http.Request) {
	choices, err := handler.service.Choices(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, choices)
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.CreateShow(request.Context(), input)
	if err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. Show could not be listed.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Show was successfully listed!")
	respond.Created(writer, show)
}
