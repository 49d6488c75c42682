package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/service"
	"github.com/MKhiriev/eye-test-server/internal/utils"
	"github.com/MKhiriev/eye-test-server/models"
)

func (h *Handler) saveResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The owner of the result is always the authenticated user from the
	// verified token, never a value taken from the request body.
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var req models.SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// test_date is stamped by the database on insert
	result := models.TestResult{
		UserID:            userID,
		LeftEyeAcuity:     req.LeftEyeAcuity,
		RightEyeAcuity:    req.RightEyeAcuity,
		LeftEyePower:      req.LeftEyePower,
		RightEyePower:     req.RightEyePower,
		LeftEyeCondition:  req.LeftEyeCondition,
		RightEyeCondition: req.RightEyeCondition,
	}

	saved, err := h.services.ResultService.SaveResult(ctx, result)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingAcuity) || errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid test result data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "acuity values for both eyes are required"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during saving test result")
			utils.WriteJSON(w, models.ErrorResponse{Error: "failed to save test result"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("result_id", saved.ResultID).Int64("user_id", userID).Msg("test result saved")

	utils.WriteJSON(w, models.ResultCreatedResponse{
		Message:  "test result saved successfully",
		ResultID: saved.ResultID,
	}, http.StatusCreated)
}

func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	results, err := h.services.ResultService.GetUserResults(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during fetching test history")
		utils.WriteJSON(w, models.ErrorResponse{Error: "failed to fetch test history"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}
