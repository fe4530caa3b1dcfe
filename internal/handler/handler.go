// Package handler exposes the JSON API: user registration and survey
// submission. It owns request decoding and status codes; scoring
// semantics live in internal/survey.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ganbold/surveyd/internal/i18n"
	"github.com/ganbold/surveyd/internal/model"
	"github.com/ganbold/surveyd/internal/store"
	"github.com/ganbold/surveyd/internal/survey"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	engine *survey.Engine
}

// New creates a new Handler.
func New(s *store.Store, e *survey.Engine) *Handler {
	return &Handler{store: s, engine: e}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/users/", h.handleCreateUser)
	r.Get("/users/", h.handleListUsers)
	r.Post("/survey/{instrument}", h.handleSubmitSurvey)
}

type createUserRequest struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	LastName       string  `json:"last_name"`
	FirstName      string  `json:"first_name"`
	Gender         string  `json:"gender"`
	Email          string  `json:"email"`
	RegistryNumber string  `json:"registry_number"`
	Country        *string `json:"country"`
}

type userResponse struct {
	UserID         int64   `json:"user_id"`
	Username       string  `json:"username"`
	LastName       string  `json:"last_name"`
	FirstName      string  `json:"first_name"`
	Gender         string  `json:"gender"`
	Email          string  `json:"email"`
	RegistryNumber string  `json:"registry_number"`
	Country        *string `json:"country,omitempty"`
}

type surveySubmission struct {
	Responses map[string]int `json:"responses"`
	UserID    int64          `json:"user_id"`
}

type surveyResponse struct {
	ResultID   string `json:"result_id"`
	TotalSum   int    `json:"total_sum"`
	QuestionMn string `json:"question_mn"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" || req.RegistryNumber == "" {
		writeError(w, http.StatusBadRequest, "username, password, email and registry_number are required")
		return
	}

	if existing, err := h.store.GetUserByUsername(req.Username); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	} else if existing != nil {
		writeError(w, http.StatusBadRequest, "Username already registered")
		return
	}
	if existing, err := h.store.GetUserByEmail(req.Email); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	} else if existing != nil {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if existing, err := h.store.GetUserByRegisterID(req.RegistryNumber); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	} else if existing != nil {
		writeError(w, http.StatusBadRequest, "Register ID already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := h.store.CreateUser(model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Surname:      req.LastName,
		Firstname:    req.FirstName,
		Gender:       req.Gender,
		Email:        req.Email,
		RegisterID:   req.RegistryNumber,
		Country:      req.Country,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		UserID:         id,
		Username:       req.Username,
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		Gender:         req.Gender,
		Email:          req.Email,
		RegistryNumber: req.RegistryNumber,
		Country:        req.Country,
	})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			UserID:         u.ID,
			Username:       u.Username,
			LastName:       u.Surname,
			FirstName:      u.Firstname,
			Gender:         u.Gender,
			Email:          u.Email,
			RegistryNumber: u.RegisterID,
			Country:        u.Country,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	instrument := chi.URLParam(r, "instrument")

	var sub surveySubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.engine.Evaluate(instrument, sub.UserID, sub.Responses)
	if err != nil {
		var verr *survey.ValidationError
		switch {
		case errors.Is(err, survey.ErrUnknownInstrument):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"detail":    "Missing or extra questions in submission",
				"missing":   verr.Missing,
				"extra":     verr.Extra,
				"duplicate": verr.Duplicate,
			})
		default:
			slog.Error("survey evaluation failed", "instrument", instrument, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	label := i18n.T(r.Context(), out.LabelID)
	uid := uuid.NewString()

	if err := h.insertResult(uid, out, label); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("scored submission",
		"instrument", out.Instrument.Name,
		"user_id", out.UserID,
		"total_sum", out.Total,
		"result_id", uid,
	)
	writeJSON(w, http.StatusOK, surveyResponse{
		ResultID:   uid,
		TotalSum:   out.Total,
		QuestionMn: label,
	})
}

// insertResult persists a scored outcome into the result table for its
// instrument. An instrument without a table is a wiring defect; returning
// an error keeps a result_id from being issued for a row that was never
// written.
func (h *Handler) insertResult(uid string, out *survey.Outcome, label string) error {
	var err error
	switch out.Instrument.Name {
	case survey.InstrumentIsma:
		_, err = h.store.InsertIsmaResult(model.NewIsmaResult(uid, out.UserID, out.Responses, out.Total, label))
	case survey.InstrumentInsomnia:
		_, err = h.store.InsertInsomniaResult(model.NewInsomniaResult(uid, out.UserID, out.Responses, out.Total, label))
	case survey.InstrumentFatigue:
		_, err = h.store.InsertFatigueResult(model.NewFatigueResult(uid, out.UserID, out.Responses, out.Total, label))
	default:
		err = fmt.Errorf("no result table for instrument %q", out.Instrument.Name)
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
