package artist

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

	router.Get("/", handler.listArtists)
	router.Get("/search", handler.searchArtists)
	router.Post("/search", handler.searchArtists)
	router.Get("/{id}", handler.getArtist)

	router.Post("/", handler.createArtist)
	router.Put("/{id}", handler.updateArtist)
	router.Delete("/{id}", handler.deleteArtist)

	return router
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.ListArtists(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Search(request.Context(), requestutil.SearchTerm(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.CreateArtist(request.Context(), input)
	if err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. "+input.Name+" could not be added.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Artist "+artist.Name+" was successfully created!")
	respond.Created(writer, artist)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.UpdateArtist(request.Context(), artistID, input)
	if err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. "+input.Name+" could not be updated.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Artist "+artist.Name+" was successfully updated!")
	respond.OK(writer, artist)
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArtist(request.Context(), artistID); err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. Artist could not be deleted.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Artist was successfully deleted!")
	respond.NoContent(writer)
}
