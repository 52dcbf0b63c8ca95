package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/service"
)

const (
	msgSearchDone  = "Search done!"
	msgCarNotFound = "Car not found."
)

// CarHandler handles HTTP requests for the car catalogue.
type CarHandler struct {
	service *service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{service: svc}
}

// HandleListCars handles GET /api/cars requests.
func (h *CarHandler) HandleListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.ListCars(r.Context())
	if err != nil {
		logInternal(r, err)
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgInternal))
		return
	}

	writeJSON(w, http.StatusOK, model.CarListResponse{
		Message: msgSearchDone,
		Data:    cars,
	})
}

// HandleGetCar handles GET /api/cars/{id} requests.
func (h *CarHandler) HandleGetCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, messageResponse(msgCarNotFound))
		return
	}

	car, err := h.service.GetCar(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse(msgCarNotFound))
			return
		}
		logInternal(r, err)
		writeJSON(w, http.StatusInternalServerError, messageResponse(msgInternal))
		return
	}

	writeJSON(w, http.StatusOK, model.CarResponse{
		Message: msgSearchDone,
		Data:    car,
	})
}
