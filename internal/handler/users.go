package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "users fetched", users)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=librarian monitor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewUser.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         domain.Role(req.Role),
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "users_username_key":
				h.conflict(w, r, "username already taken")
			case "users_email_key":
				h.conflict(w, r, "email already taken")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// deliver the generated password by mail
	if err := h.publishMail(domain.MailMessage{
		Type: "new_account",
		To:   user.Email,
		Data: domain.NewAccountMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)
	h.emitAudit(me.ID, &user.ID, domain.ActionUserCreated, map[string]any{
		"username": user.Username,
		"role":     user.Role,
	})

	h.successResponse(w, r, "user created", user)
}

// UpdateUserStatus enables or disables an account. Disabled accounts keep
// their shifts and logged hours but can no longer sign in.
func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid user id"))
		return
	}

	var req struct {
		IsActive *bool `json:"isActive" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)
	if me.ID == id {
		h.badRequest(w, r, errors.New("cannot change your own account status"))
		return
	}

	user, err := h.repository.GetUserByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	user.IsActive = *req.IsActive
	if err := h.repository.UpdateUser(user); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.conflict(w, r, "user was modified concurrently, try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "user status updated", user)
}

// DeleteUser removes an account outright. Shift assignments and hour logs
// reference monitors without a foreign key, so history survives removal;
// disabling via UpdateUserStatus is the usual path.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid user id"))
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)
	if me.ID == id {
		h.badRequest(w, r, errors.New("cannot delete your own account"))
		return
	}

	if _, err := h.repository.GetUserByID(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteUser(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "user deleted", nil)
}
