package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "claim_triage/internal/adapter/http/dto/request"
	response "claim_triage/internal/adapter/http/dto/response"
	"claim_triage/internal/domain/assessment"
	"claim_triage/internal/usecase"
	"claim_triage/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)
	errInvalidQuery        = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errMissingImage        = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Multipart field 'image' is required", http.StatusBadRequest)
	errImageTooLarge       = pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the upload limit", http.StatusRequestEntityTooLarge)
)

// ClaimHandler serves claim intake, listing and the photo assessment pipeline.
type ClaimHandler struct {
	claims         usecase.IClaimUseCase
	assessments    usecase.IAssessmentUseCase
	maxUploadBytes int64
}

func NewClaimHandler(claims usecase.IClaimUseCase, assessments usecase.IAssessmentUseCase, maxUploadBytes int64) *ClaimHandler {
	return &ClaimHandler{claims: claims, assessments: assessments, maxUploadBytes: maxUploadBytes}
}

// CreateClaim godoc
// @Summary      Route an assessed claim
// @Description  Classifies the AI confidence, routes the claim to a review tier and stores it.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        claim  body      request.ClaimRequest  true  "Assessed claim"
// @Success      201    {object}  response.ClaimResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var payload request.ClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[claim][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.claims.CreateClaim(c.Request.Context(), in)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

// AssessClaim godoc
// @Summary      Assess a vehicle photo
// @Description  Runs the AI pipeline on the uploaded photo, then routes and stores the resulting claim.
// @Tags         claims
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Vehicle photo (jpeg, png, webp, gif)"
// @Success      201    {object}  response.AssessmentResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      503    {object}  pkg.HTTPError
// @Router       /claims/assess [post]
func (h *ClaimHandler) AssessClaim(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	fh, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(errImageTooLarge.HTTPStatus, errImageTooLarge.ToHTTPError())
			return
		}
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	defer f.Close()
	image, err := io.ReadAll(f)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[claim][handler] assess start file=%q size=%d", fh.Filename, len(image))
	res, err := h.assessments.Assess(c.Request.Context(), image, fh.Filename)
	if err != nil {
		log.Printf("[claim][handler] assess failed file=%q err=%v", fh.Filename, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAssessment(res))
}

// ListClaims godoc
// @Summary      List claims
// @Description  Claims in insertion order, optionally filtered. Filters are combined with AND.
// @Tags         claims
// @Produce      json
// @Param        status      query  string  false  "pending | processing | approved | rejected"
// @Param        confidence  query  string  false  "high | medium | low"
// @Param        min_cost    query  number  false  "Minimum repair total"
// @Param        max_cost    query  number  false  "Maximum repair total"
// @Param        q           query  string  false  "Search over id, make and model"
// @Success      200  {object}  response.ClaimListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	var q request.ClaimListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	claims, err := h.claims.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// GetClaim godoc
// @Summary      Get a claim
// @Tags         claims
// @Produce      json
// @Param        id   path      string  true  "Claim ID"
// @Success      200  {object}  response.ClaimResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.claims.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// GetStats godoc
// @Summary      Queue statistics
// @Tags         claims
// @Produce      json
// @Success      200  {object}  response.StatsResponse
// @Router       /claims/stats [get]
func (h *ClaimHandler) GetStats(c *gin.Context) {
	st, err := h.claims.Stats(c.Request.Context())
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStats(st))
}

// GetStages godoc
// @Summary      Assessment pipeline stages
// @Tags         pipeline
// @Produce      json
// @Success      200  {object}  response.StagesResponse
// @Router       /pipeline/stages [get]
func (h *ClaimHandler) GetStages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStages(assessment.Stages()))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimInput), errors.Is(err, usecase.ErrInvalidClaimID):
		return pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFilter):
		return errInvalidQuery
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Unsupported or empty image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssessmentUnavailable):
		return pkg.NewDomainError("ASSESSMENT_UNAVAILABLE", "AI assessment is unavailable, try again later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
