package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"BarterAPI/internal/config"
	"BarterAPI/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingHandler обрабатывает каталог объявлений.
type ListingHandler struct {
	ListingService *service.ListingService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

// NewListingHandler создаёт хендлер объявлений.
func NewListingHandler(listingService *service.ListingService, logger *zap.SugaredLogger, cfg *config.Config) *ListingHandler {
	return &ListingHandler{ListingService: listingService, Logger: logger, Config: cfg}
}

// All возвращает все объявления. Пустой каталог — пустой массив.
func (h *ListingHandler) All(w http.ResponseWriter, r *http.Request) {
	listings, err := h.ListingService.All(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// Create создаёт объявление.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("CreateListing: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	listing, err := h.ListingService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, listing)
}

// GetByID возвращает объявление, включая архивные.
func (h *ListingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	listing, err := h.ListingService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// Update перезаписывает поля объявления.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var in service.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("UpdateListing: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if _, err := h.ListingService.Update(r.Context(), id, in); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Объявление успешно обновлено.")
}

// UserListings возвращает активные объявления пользователя.
func (h *ListingHandler) UserListings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	listings, err := h.ListingService.ListByOwner(r.Context(), id, false)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// ArchivedListings возвращает архивные объявления пользователя.
func (h *ListingHandler) ArchivedListings(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	listings, err := h.ListingService.ListByOwner(r.Context(), userID, true)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// Archive переводит объявление в архив.
func (h *ListingHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.ListingService.Archive(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Объявление успешно архивировано.")
}

// Search — поиск с фильтрами ?query=&categories=&type=.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	listings, err := h.ListingService.Search(r.Context(), q.Get("query"), q.Get("categories"), q.Get("type"))
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// UploadPhoto принимает multipart-файл и сохраняет его в каталог загрузок
// под уникальным именем. Возвращает непрозрачную ссылку для PhotoPath;
// содержимое файла не проверяется.
func (h *ListingHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	maxBody := int64(h.Config.PhotoMaxSizeMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody+1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadPhoto: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("UploadPhoto: missing file", "error", err)
		writeMessage(w, http.StatusBadRequest, "Файл не выбран")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Warnw("UploadPhoto: failed to read file", "error", err)
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		writeMessage(w, http.StatusBadRequest, "Файл не выбран")
		return
	}
	if int64(len(data)) > maxBody {
		h.Logger.Warnw("UploadPhoto: payload too large", "size", len(data), "limit", maxBody)
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	if err := os.MkdirAll(h.Config.UploadDir, 0o755); err != nil {
		h.Logger.Errorw("UploadPhoto: cannot create upload dir", "dir", h.Config.UploadDir, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	name := uuid.NewString() + "_" + filepath.Base(header.Filename)
	if err := os.WriteFile(filepath.Join(h.Config.UploadDir, name), data, 0o644); err != nil {
		h.Logger.Errorw("UploadPhoto: cannot write file", "name", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"imageUrl": h.Config.ServerURL + "/images/" + name,
	})
}
