// HTTP-хендлеры CRUD-операций над котами
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catkeeper/internal/server/middleware"
	"catkeeper/internal/server/service"
	serr "catkeeper/internal/shared/errors"
	"catkeeper/internal/shared/models"
)

// parseIDParam извлекает числовой параметр пути {id}.
func parseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serr.ErrInvalidInput
	}
	return id, nil
}

// CreateCat создаёт кота. Если ownerId в теле не указан,
// владельцем становится текущий пользователь.
//
// Требует JWT-аутентификацию.
//
// @Summary      Create cat
// @Description  Creates a cat owned by the given user (defaults to the caller).
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateCatRequest true "Create cat request"
// @Success      201 {object} models.Cat
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Owner not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cats [post]
func (h *Handler) CreateCat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	ownerID := req.OwnerID
	if ownerID == 0 {
		ownerID = identity.ID
	}

	cat, err := h.Svc.Cats.Create(r.Context(), ownerID, req.Name, req.Breed, req.LastFed)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("create cat failed", "error", err, "owner_id", ownerID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cat)
}

// ListCats возвращает котов текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware).
//
// @Summary      List cats
// @Description  Returns all cats owned by the authenticated user.
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Cat
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cats [get]
func (h *Handler) ListCats(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	cats, err := h.Svc.Cats.ListForOwner(r.Context(), identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("list cats failed", "error", err, "owner_id", identity.ID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(cats)
}

// GetCat возвращает кота по идентификатору.
//
// @Summary      Get cat
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Cat ID"
// @Success      200 {object} models.Cat
// @Failure      400 {object} ErrorResponse "Invalid id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Cat not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cats/{id} [get]
func (h *Handler) GetCat(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	cat, err := h.Svc.Cats.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("get cat failed", "error", err, "cat_id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(cat)
}

// UpdateCat частично обновляет кота: передаются только изменяемые поля.
//
// @Summary      Update cat
// @Description  Partially updates name, breed or lastFed of a cat.
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Cat ID"
// @Param        request body models.UpdateCatRequest true "Fields to update"
// @Success      200 {object} models.Cat
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Cat not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cats/{id} [patch]
func (h *Handler) UpdateCat(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req models.UpdateCatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	cat, err := h.Svc.Cats.Update(r.Context(), id, service.UpdateCatFields{
		Name:    req.Name,
		Breed:   req.Breed,
		LastFed: req.LastFed,
	})
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("update cat failed", "error", err, "cat_id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(cat)
}

// DeleteCat удаляет кота по идентификатору.
//
// @Summary      Delete cat
// @Tags         cats
// @Security     BearerAuth
// @Param        id path int true "Cat ID"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Invalid id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Cat not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cats/{id} [delete]
func (h *Handler) DeleteCat(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	if err := h.Svc.Cats.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("delete cat failed", "error", err, "cat_id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
