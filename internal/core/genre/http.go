package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listGenres)
	router.Get("/choices", handler.genreChoices)
	router.Get("/{id}", handler.getGenre)
	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *Handler) genreChoices(writer http.ResponseWriter, request *http.Request) {
	options, err := handler.service.Choices(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, options)
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}
