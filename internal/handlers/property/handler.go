package property

import (
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"recanto/infras/otel"
	"recanto/internal/domains/property/model"
	"recanto/internal/domains/property/model/dto"
	"recanto/internal/domains/property/service"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
	"recanto/shared/validator"
	"recanto/transport/http/response"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProperties)
		routerGroup.Post("/", handler.CreateProperty)
		routerGroup.Get("/owned", handler.GetOwnedProperties)
		routerGroup.Get("/{id}", handler.GetProperty)
		routerGroup.Patch("/{id}", handler.UpdateProperty)
		routerGroup.Delete("/{id}", handler.DeleteProperty)
		routerGroup.Post("/{id}/images", handler.AddImages)
	})
}

// GetProperties searches active listings.
// @Summary Search properties
// @Description Search active listings with optional filtering and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param state query string false "Filter by state"
// @Param min_capacity query int false "Minimum guest capacity"
// @Param max_price query int false "Maximum price per night in cents"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	city := r.URL.Query().Get(model.FieldCity)
	state := r.URL.Query().Get(model.FieldState)
	minCapacity := r.URL.Query().Get(constant.RequestParamMinCapacity)
	maxPrice := r.URL.Query().Get(constant.RequestParamMaxPrice)

	// Public search never exposes deactivated listings
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    model.TableName,
		})
	}

	if state != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldState,
			Operator: gDto.FilterOperatorEq,
			Value:    state,
			Table:    model.TableName,
		})
	}

	if minCapacity != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    minCapacity,
			Table:    model.TableName,
			ArgName:  constant.RequestParamMinCapacity,
		})
	}

	if maxPrice != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPricePerNight,
			Operator: gDto.FilterOperatorLessEq,
			Value:    maxPrice,
			Table:    model.TableName,
			ArgName:  constant.RequestParamMaxPrice,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateProperty creates a new listing owned by the authenticated user.
// @Summary Create a property
// @Description Create a new property listing.
// @Tags Property
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Create Property Request"
// @Success 201 {object} response.Data[dto.PropertyResponse] "Created property"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
// @Security BearerAuth
func (handler *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	req := dto.CreatePropertyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOwnedProperties lists the authenticated user's own listings.
// @Summary Get my properties
// @Description Retrieve the listings owned by the authenticated user, including inactive ones.
// @Tags Property
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of owned properties"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/owned [get]
// @Security BearerAuth
func (handler *Handler) GetOwnedProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnedProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetOwned(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owned properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetProperty retrieves a single listing by ID.
// @Summary Get a property
// @Description Retrieve a property listing by its ID.
// @Tags Property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProperty partially updates a listing.
// @Summary Update a property
// @Description Update fields of a property listing. Only the owner or an admin may update.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Update Property Request"
// @Success 200 {object} response.Message "Property updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePropertyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property " + id + " updated successfully")

	response.WithMessage(w, http.StatusOK, "Property updated successfully")
}

// DeleteProperty removes a listing and its stored images.
// @Summary Delete a property
// @Description Delete a property listing. Only the owner or an admin may delete.
// @Tags Property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Message "Property deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property " + id + " deleted successfully")

	response.WithMessage(w, http.StatusOK, "Property deleted successfully")
}

// AddImages uploads listing images to S3.
// @Summary Upload property images
// @Description Upload one or more image files for a property listing.
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param files formData file true "Image files to upload"
// @Success 200 {object} response.Data[dto.AddImagesResponse] "Uploaded image URLs"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) AddImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddImages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	fileHeaders := r.MultipartForm.File[constant.FormFiles]
	if len(fileHeaders) == 0 {
		response.WithError(w, failure.BadRequestFromString("no files provided"))

		return
	}

	openers := make([]multipart.File, 0, len(fileHeaders))

	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to open uploaded file")

			response.WithError(w, err)

			return
		}
		defer file.Close()

		openers = append(openers, file)
	}

	urls, err := handler.service.AddImages(ctx, id, fileHeaders, openers)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload images")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Images uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, dto.AddImagesResponse{Images: urls})
}
