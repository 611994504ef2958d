package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users_test.go -package=handlers

// UserDirectory defines the user methods used by the user handlers.
type UserDirectory interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// AddressRequest is the postal address of a new user
// swagger:model AddressRequest
type AddressRequest struct {
	Street string `json:"street" validate:"max=255"`
	City   string `json:"city" validate:"max=100"`
	State  string `json:"state" validate:"max=100"`
	Zip    string `json:"zip" validate:"max=20"`
}

// CreateUserRequest represents the JSON body for registering a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// default: alice
	Username string `json:"username" validate:"max=100"`

	// Unique email, stored lowercased
	// required: true
	// default: alice@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Contact phone
	PhoneNumber string `json:"phoneNumber" validate:"max=32"`

	// Postal address
	Address AddressRequest `json:"address"`
}

// NewCreateUserHandler returns an HTTP handler that registers a user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid user"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /users [post]
func NewCreateUserHandler(svc UserDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decodeAndValidateUser(r, &req); err != nil {
			logger.Log.Warnw("invalid user request", "error", err)
			writeInvalidInput(w, err.Error())
			return
		}

		user, err := svc.Create(r.Context(), &models.User{
			Username:    req.Username,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address: models.Address{
				Street: req.Address.Street,
				City:   req.Address.City,
				State:  req.Address.State,
				Zip:    req.Address.Zip,
			},
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// decodeAndValidateUser trims the email before validating its format.
func decodeAndValidateUser(r *http.Request, req *CreateUserRequest) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errInvalidBody
	}
	req.Email = strings.TrimSpace(req.Email)
	return validateStruct(req)
}

// NewGetUserHandler returns a single user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewListUsersHandler returns every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func NewListUsersHandler(svc UserDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// RegisterUserHandlers registers the user routes
func RegisterUserHandlers(r chi.Router, create, list, get http.HandlerFunc) {
	r.Post("/users", create)
	r.Get("/users", list)
	r.Get("/users/{id}", get)
}
