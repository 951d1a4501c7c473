package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lumenarts/school-be/internal/auth"
	"github.com/lumenarts/school-be/internal/http/respond"
	"github.com/lumenarts/school-be/internal/models/dto"
)

// AuthHandler owns the register/login endpoints.
type AuthHandler struct {
	svc *auth.Service
	log *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc *auth.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/auth/register", h.handleRegister)
	mux.HandleFunc("/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		DOB:            req.DOB,
		Country:        req.Country,
		Street1:        req.Street1,
		Street2:        req.Street2,
		City:           req.City,
		State:          req.State,
		PinCode:        req.PinCode,
		Centre:         req.Centre,
		Level:          req.Level,
		Stream:         req.Stream,
		Scholarship:    req.Scholarship,
		Comments:       req.Comments,
		Communications: req.Communications,
	})
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.Error(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, auth.ErrAlreadyExists):
			respond.Error(w, http.StatusBadRequest, "account already exists")
		default:
			h.log.Error("register failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to create account")
		}
		return
	}

	// The created record is never echoed back.
	respond.JSON(w, http.StatusCreated, "account created successfully", nil)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	result, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.Error(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, auth.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "account not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			respond.Error(w, http.StatusBadRequest, "invalid credentials")
		default:
			h.log.Error("login failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{
		Token:   result.Token,
		Account: result.Account,
	})
}
