package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "claim_triage/internal/adapter/http/dto/request"
	response "claim_triage/internal/adapter/http/dto/response"
	"claim_triage/internal/domain/wizard"
	"claim_triage/internal/usecase"
	"claim_triage/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler drives the human review wizard sessions.
type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// StartReview godoc
// @Summary      Start a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Claim ID"
// @Success      201  {object}  response.ReviewSessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /claims/{id}/reviews [post]
func (h *ReviewHandler) StartReview(c *gin.Context) {
	s, err := h.usecase.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromReviewSession(s))
}

// GetReview godoc
// @Summary      Get a review session
// @Tags         reviews
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.ReviewSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /reviews/{session_id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(s))
}

// CompleteStep godoc
// @Summary      Complete the current review step
// @Description  Merges the section for the current step and advances. Completing the summary commits the decision.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        session_id  path      string               true  "Session ID"
// @Param        step        body      request.StepRequest  true  "Step input"
// @Success      200         {object}  response.ReviewSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /reviews/{session_id}/steps [post]
func (h *ReviewHandler) CompleteStep(c *gin.Context) {
	var payload request.StepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}
	p, err := payload.ToPayload()
	if err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.CompleteStep(c.Request.Context(), c.Param("session_id"), p)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(s))
}

// EditCost godoc
// @Summary      Edit a cost line
// @Description  Only allowed on the costs step. The total is recomputed from the breakdown.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                   true  "Session ID"
// @Param        index       path      int                      true  "Breakdown index"
// @Param        cost        body      request.CostEditRequest  true  "New cost"
// @Success      200         {object}  response.ReviewSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /reviews/{session_id}/costs/{index} [patch]
func (h *ReviewHandler) EditCost(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}
	var payload request.CostEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.EditCost(c.Request.Context(), c.Param("session_id"), index, *payload.Cost)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(s))
}

// CancelReview godoc
// @Summary      Cancel a review
// @Description  Drops the session. The claim is left untouched.
// @Tags         reviews
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /reviews/{session_id} [delete]
func (h *ReviewHandler) CancelReview(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, wizard.ErrInvalidInput):
		return errInvalidReviewPayload
	case errors.Is(err, wizard.ErrImagesNotVerified):
		return pkg.NewDomainErrorSimple("IMAGES_NOT_VERIFIED", "Images must be verified before continuing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewInProgress):
		return pkg.NewDomainErrorSimple("REVIEW_IN_PROGRESS", "A review is already in progress for this claim", http.StatusConflict)
	case errors.Is(err, wizard.ErrAlreadyReviewed):
		return pkg.NewDomainErrorSimple("CLAIM_ALREADY_REVIEWED", "Claim already carries a review decision", http.StatusConflict)
	case errors.Is(err, wizard.ErrStepMismatch), errors.Is(err, wizard.ErrWizardFinished):
		return pkg.NewDomainErrorSimple("REVIEW_STEP_CONFLICT", "Operation not allowed at the current step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
