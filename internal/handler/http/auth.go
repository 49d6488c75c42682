package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/service"
	"github.com/MKhiriev/eye-test-server/internal/store"
	"github.com/MKhiriev/eye-test-server/internal/utils"
	"github.com/MKhiriev/eye-test-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, models.User{Email: req.Email, Name: req.Name}, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "email, password and name are required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: "email already registered"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "user registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "email and password are required"}, http.StatusBadRequest)
			return
		// An unknown email and a wrong password produce the same response,
		// so the endpoint cannot be used to probe which emails are registered.
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: foundUser}, http.StatusOK)
}
