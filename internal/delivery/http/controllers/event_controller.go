package controllers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// multipartMemory is the part of a multipart form kept in memory; the rest spills to disk.
const multipartMemory = 8 << 20

// CreateEventRequest is the multipart form of POST /events. The image file is
// read separately from the "image" part.
type CreateEventRequest struct {
	Title       string `form:"title" validate:"required,max=255"`
	Description string `form:"description"`
	Date        int64  `form:"date" validate:"gt=0"`
	EventURL    string `form:"event_url" validate:"required,url"`
	Remote      bool   `form:"remote"`
	City        string `form:"city" validate:"required_if=Remote false,max=255"`
	UF          string `form:"uf" validate:"required_if=Remote false,max=2"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	return helpers.ValidateStruct(c)
}

func (c CreateEventRequest) toInput() domain.CreateEventInput {
	in := domain.CreateEventInput{
		Title:       c.Title,
		Description: c.Description,
		EventURL:    c.EventURL,
		Date:        helpers.EpochMillis(c.Date),
		Remote:      c.Remote,
	}
	if !c.Remote {
		in.City = c.City
		in.UF = c.UF
	}
	return in
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventPage is a page of event summaries with its pagination metadata.
type EventPage struct {
	Items      []domain.EventSummary  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for event list endpoints (200).
type ListEventsSuccessResponse struct {
	Data  EventPage         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventDetailsSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventDetailsSuccessResponse struct {
	Data  *domain.EventDetails `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type EventController struct {
	Logger         *slog.Logger
	Service        domain.EventService
	MaxUploadBytes int64
}

func NewEventController(logger *slog.Logger, svc domain.EventService, maxUploadBytes int64) *EventController {
	return &EventController{
		Logger:         logger,
		Service:        svc,
		MaxUploadBytes: maxUploadBytes,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event from a multipart form. Non-remote events need city and uf. The optional image is uploaded to object storage; if the upload fails the event is still created without an image URL.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Event title"
// @Param description formData string false "Event description"
// @Param date formData integer true "Event date in milliseconds since the Unix epoch"
// @Param event_url formData string true "Event URL"
// @Param remote formData boolean false "Whether the event is remote"
// @Param city formData string false "City (required when not remote)"
// @Param uf formData string false "State code (required when not remote)"
// @Param image formData file false "Event image"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if c.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			helpers.WriteJSONError(w, http.StatusRequestEntityTooLarge, helpers.ErrCodeTooLarge, "request body too large")
			return
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req, msg := readCreateEventForm(r)
	if msg != "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, msg)
		return
	}
	if !helpers.RunValidation(w, req) {
		return
	}
	in := req.toInput()

	img, err := readImage(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid image")
		return
	}
	in.Image = img

	event, err := c.Service.CreateEvent(r.Context(), in)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to create event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// readCreateEventForm copies the form values into a request. A non-empty
// message reports a value that could not be parsed.
func readCreateEventForm(r *http.Request) (CreateEventRequest, string) {
	req := CreateEventRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		EventURL:    r.FormValue("event_url"),
		City:        r.FormValue("city"),
		UF:          r.FormValue("uf"),
	}
	if raw := r.FormValue("date"); raw != "" {
		ms, err := helpers.ParseEpochMillis(raw)
		if err != nil {
			return req, "date must be milliseconds since the Unix epoch"
		}
		req.Date = ms
	}
	if raw := r.FormValue("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			return req, "remote must be true or false"
		}
		req.Remote = remote
	}
	return req, ""
}

// readImage returns the uploaded image, or nil when the form has none.
func readImage(r *http.Request) (*domain.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return imageFromPart(file, header)
}

func imageFromPart(file multipart.File, header *multipart.FileHeader) (*domain.ImageUpload, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &domain.ImageUpload{
		Filename:    path.Base(header.Filename),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// ListUpcomingEvents godoc
// @Summary List upcoming events
// @Description Returns events dated now or later, ordered by date, with their city and state when they have an address.
// @Tags events
// @Produce json
// @Param page query int false "Page number (0-based)" default(0)
// @Param page_size query int false "Page size (max 100)" default(10)
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	items, total, err := c.Service.ListUpcomingEvents(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	c.writePage(w, params, items, total)
}

// FilterEvents godoc
// @Summary Search events
// @Description Returns events matching every given criterion. Text criteria match case-sensitively anywhere in the value; dates bound the event date inclusively. start_date defaults to the Unix epoch and end_date to now.
// @Tags events
// @Produce json
// @Param page query int false "Page number (0-based)" default(0)
// @Param page_size query int false "Page size (max 100)" default(10)
// @Param title query string false "Part of the title"
// @Param city query string false "Part of the city"
// @Param uf query string false "Part of the state code"
// @Param start_date query string false "Lower bound, RFC3339 or YYYY-MM-DD"
// @Param end_date query string false "Upper bound, RFC3339 or YYYY-MM-DD (whole day)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/filter [get]
func (c *EventController) FilterEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	start, err := helpers.ParseDateQuery(r, "start_date", false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	end, err := helpers.ParseDateQuery(r, "end_date", true)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	filter := domain.EventFilter{
		Title:     helpers.OptionalQuery(r, "title"),
		City:      helpers.OptionalQuery(r, "city"),
		UF:        helpers.OptionalQuery(r, "uf"),
		StartDate: start,
		EndDate:   end,
	}
	items, total, err := c.Service.ListFilteredEvents(r.Context(), params, filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to filter events")
		return
	}
	c.writePage(w, params, items, total)
}

func (c *EventController) writePage(w http.ResponseWriter, params domain.PaginationParams, items []domain.EventSummary, total int) {
	if items == nil {
		items = []domain.EventSummary{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventPage{
		Items:      items,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetEventDetails godoc
// @Summary Get event details
// @Description Returns the event with its city, state and the coupons that are still valid.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventDetailsSuccessResponse "data contains the event details"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !helpers.IsUUID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	details, err := c.Service.GetEventDetails(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to get event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, details)
}
