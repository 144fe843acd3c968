package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"BarterAPI/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FavoriteHandler обрабатывает избранные объявления.
type FavoriteHandler struct {
	FavoriteService *service.FavoriteService
	Logger          *zap.SugaredLogger
}

// NewFavoriteHandler создаёт хендлер избранного.
func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *zap.SugaredLogger) *FavoriteHandler {
	return &FavoriteHandler{FavoriteService: favoriteService, Logger: logger}
}

// FavoriteRequest — тело добавления в избранное.
type FavoriteRequest struct {
	UserID    int64 `json:"userId"`
	ListingID int64 `json:"listingId"`
}

// Add добавляет объявление в избранное пользователя.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AddFavorite: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.Add(r.Context(), req.UserID, req.ListingID); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Добавлено в избранное.")
}

// ListForUser возвращает неархивные избранные объявления пользователя.
// Пустое избранное — пустой массив, не ошибка.
func (h *FavoriteHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	listings, err := h.FavoriteService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// Remove убирает объявление из избранного пользователя.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	listingID, err := strconv.ParseInt(chi.URLParam(r, "listingId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.Remove(r.Context(), userID, listingID); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Удалено из избранного.")
}
