package infrastructure

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// BookingHTTPHandler exposes the booking use-cases over HTTP. Request schemas
// are validated here; business rules stay in the use-cases.
type BookingHTTPHandler struct {
	findTravels                  *application.FindTravels
	findTravelByID               *application.FindTravelByID
	findTravelsByOriginCity      *application.FindTravelsByOriginCity
	findTravelsByDestinationCity *application.FindTravelsByDestinationCity
	findTravelsByDepartureDate   *application.FindTravelsByDepartureDate
	createTravel                 *application.CreateTravel
	deleteTravel                 *application.DeleteTravel
	bookSeat                     *application.BookSeat
	cancelBooking                *application.CancelBooking
	createBusStation             *application.CreateBusStation
	findBusStations              *application.FindBusStations
	createUser                   *application.CreateUser
	validate                     *validator.Validate
	logger                       pkgApp.AppLogger
}

// UseCases bundles everything the HTTP handler serves.
type UseCases struct {
	FindTravels                  *application.FindTravels
	FindTravelByID               *application.FindTravelByID
	FindTravelsByOriginCity      *application.FindTravelsByOriginCity
	FindTravelsByDestinationCity *application.FindTravelsByDestinationCity
	FindTravelsByDepartureDate   *application.FindTravelsByDepartureDate
	CreateTravel                 *application.CreateTravel
	DeleteTravel                 *application.DeleteTravel
	BookSeat                     *application.BookSeat
	CancelBooking                *application.CancelBooking
	CreateBusStation             *application.CreateBusStation
	FindBusStations              *application.FindBusStations
	CreateUser                   *application.CreateUser
}

func NewBookingHTTPHandler(useCases UseCases, logger pkgApp.AppLogger) *BookingHTTPHandler {
	return &BookingHTTPHandler{
		findTravels:                  useCases.FindTravels,
		findTravelByID:               useCases.FindTravelByID,
		findTravelsByOriginCity:      useCases.FindTravelsByOriginCity,
		findTravelsByDestinationCity: useCases.FindTravelsByDestinationCity,
		findTravelsByDepartureDate:   useCases.FindTravelsByDepartureDate,
		createTravel:                 useCases.CreateTravel,
		deleteTravel:                 useCases.DeleteTravel,
		bookSeat:                     useCases.BookSeat,
		cancelBooking:                useCases.CancelBooking,
		createBusStation:             useCases.CreateBusStation,
		findBusStations:              useCases.FindBusStations,
		createUser:                   useCases.CreateUser,
		validate:                     validator.New(),
		logger:                       logger,
	}
}

func (h *BookingHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Get("/travels", h.handleFindTravels)
	router.Get("/travels/origin", h.handleFindTravelsByOriginCity)
	router.Get("/travels/destination", h.handleFindTravelsByDestinationCity)
	router.Get("/travels/date", h.handleFindTravelsByDepartureDate)
	router.Get("/travels/{travelID}", h.handleFindTravelByID)
	router.Post("/travels", h.handleCreateTravel)
	router.Delete("/travels/{travelID}", h.handleDeleteTravel)
	router.Post("/passengers", h.handleBookSeat)
	router.Delete("/passengers/{passengerID}", h.handleCancelBooking)
	router.Get("/busstations", h.handleFindBusStations)
	router.Post("/busstations", h.handleCreateBusStation)
	router.Post("/users", h.handleCreateUser)
}

func (h *BookingHTTPHandler) handleFindTravels(w http.ResponseWriter, r *http.Request) {
	travels, err := h.findTravels.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"travels": travels})
}

func (h *BookingHTTPHandler) handleFindTravelsByOriginCity(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if len(city) < 2 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "city query parameter must have at least 2 characters"})
		return
	}
	travels, err := h.findTravelsByOriginCity.Execute(r.Context(), application.FindTravelsByCityInput{City: city})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"travels": travels})
}

func (h *BookingHTTPHandler) handleFindTravelsByDestinationCity(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if len(city) < 2 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "city query parameter must have at least 2 characters"})
		return
	}
	travels, err := h.findTravelsByDestinationCity.Execute(r.Context(), application.FindTravelsByCityInput{City: city})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"travels": travels})
}

func (h *BookingHTTPHandler) handleFindTravelsByDepartureDate(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if len(city) < 2 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "city query parameter must have at least 2 characters"})
		return
	}
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "date must be RFC3339 or YYYY-MM-DD"})
		return
	}
	travels, err := h.findTravelsByDepartureDate.Execute(r.Context(), application.FindTravelsByDepartureDateInput{Date: date, City: city})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"travels": travels})
}

func (h *BookingHTTPHandler) handleFindTravelByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "travelID")
	if !ok {
		return
	}
	travel, err := h.findTravelByID.Execute(r.Context(), application.FindTravelByIDInput{ID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"travel": travel})
}

type createTravelRequest struct {
	DepartureDate      string  `json:"departureDate" validate:"required"`
	BusSeat            string  `json:"busSeat" validate:"required,oneof=Convencional Semi-leito Leito Cama"`
	Price              float64 `json:"price" validate:"required,gt=0"`
	DepartureStationID int64   `json:"departureStationId" validate:"required,min=1"`
	ArrivalStationID   int64   `json:"arrivalStationId" validate:"required,min=1"`
}

func (h *BookingHTTPHandler) handleCreateTravel(w http.ResponseWriter, r *http.Request) {
	var req createTravelRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	departureDate, err := parseDate(req.DepartureDate)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "departureDate must be RFC3339"})
		return
	}

	travel, err := h.createTravel.Execute(r.Context(), application.CreateTravelInput{
		DepartureDate:      departureDate,
		BusSeat:            domain.BusSeat(req.BusSeat),
		Price:              req.Price,
		DepartureStationID: req.DepartureStationID,
		ArrivalStationID:   req.ArrivalStationID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "travel scheduled", "travel": travel})
}

func (h *BookingHTTPHandler) handleDeleteTravel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "travelID")
	if !ok {
		return
	}
	travel, err := h.deleteTravel.Execute(r.Context(), application.DeleteTravelInput{ID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"message": "travel removed", "travel": travel})
}

type bookSeatRequest struct {
	Seat     int    `json:"seat" validate:"required,min=1"`
	Payment  string `json:"payment" validate:"required"`
	TravelID int64  `json:"travelId" validate:"required,min=1"`
	UserID   int64  `json:"userId" validate:"required,min=1"`
}

func (h *BookingHTTPHandler) handleBookSeat(w http.ResponseWriter, r *http.Request) {
	var req bookSeatRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	passenger, err := h.bookSeat.Execute(r.Context(), application.BookSeatInput{
		Seat:     req.Seat,
		Payment:  req.Payment,
		TravelID: req.TravelID,
		UserID:   req.UserID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "seat booked", "passenger": passenger})
}

func (h *BookingHTTPHandler) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "passengerID")
	if !ok {
		return
	}
	passenger, err := h.cancelBooking.Execute(r.Context(), application.CancelBookingInput{PassengerID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"message": "booking cancelled", "passenger": passenger})
}

type createBusStationRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required,min=2"`
	UF   string `json:"uf" validate:"required,len=2"`
}

func (h *BookingHTTPHandler) handleCreateBusStation(w http.ResponseWriter, r *http.Request) {
	var req createBusStationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	station, err := h.createBusStation.Execute(r.Context(), application.CreateBusStationInput{
		Name: req.Name,
		City: req.City,
		UF:   req.UF,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "bus station registered", "busStation": station})
}

func (h *BookingHTTPHandler) handleFindBusStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.findBusStations.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"busStations": stations})
}

type createUserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	CPF       string `json:"cpf" validate:"required,len=11"`
	Telephone string `json:"telephone" validate:"required"`
}

func (h *BookingHTTPHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	user, err := h.createUser.Execute(r.Context(), application.CreateUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CPF:       req.CPF,
		Telephone: req.Telephone,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "user registered", "user": user})
}

func (h *BookingHTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return false
	}
	return true
}

func (h *BookingHTTPHandler) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "id must be a positive number"})
		return 0, false
	}
	return id, true
}

func (h *BookingHTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if domainErr, ok := domain.AsError(err); ok {
		h.writeJSON(w, domainErr.StatusCode, domainErr)
		return
	}
	pkgApp.LogError(r.Context(), h.logger, "unexpected error handling request", err, map[string]interface{}{
		"path": r.URL.Path,
	})
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}

func (h *BookingHTTPHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
