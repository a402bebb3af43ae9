package venue

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

	router.Get("/", handler.listAreas)
	router.Get("/locale", handler.listByLocale)
	router.Get("/search", handler.searchVenues)
	router.Post("/search", handler.searchVenues)
	router.Get("/{id}", handler.getVenue)

	router.Post("/", handler.createVenue)
	router.Put("/{id}", handler.updateVenue)
	router.Delete("/{id}", handler.deleteVenue)

	return router
}

func (handler *Handler) listAreas(writer http.ResponseWriter, request *http.Request) {
	areas, err := handler.service.ListAreas(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, areas)
}

func (handler *Handler) listByLocale(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	venues, err := handler.service.ListByLocale(request.Context(), query.Get("city"), query.Get("state"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, venues)
}

func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Search(request.Context(), requestutil.SearchTerm(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) getVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.CreateVenue(request.Context(), input)
	if err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. Venue "+input.Name+" could not be created.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Venue "+venue.Name+" was successfully added!")
	respond.Created(writer, venue)
}

func (handler *Handler) updateVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.UpdateVenue(request.Context(), venueID, input)
	if err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. Venue "+input.Name+" could not be updated.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Venue "+venue.Name+" was successfully updated!")
	respond.OK(writer, venue)
}

func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVenue(request.Context(), venueID); err != nil {
		handler.flashes.Notify(request.Context(), flash.LevelError, "An error occurred. Venue could not be deleted.")
		respond.Error(writer, request, err)
		return
	}

	handler.flashes.Notify(request.Context(), flash.LevelSuccess, "Venue was successfully deleted!")
	respond.NoContent(writer)
}
