package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"BarterAPI/internal/config"
	"BarterAPI/internal/middleware"
	"BarterAPI/internal/model"
	"BarterAPI/internal/service"
	"BarterAPI/internal/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и профиль пользователя.
type UserHandler struct {
	UserService *service.UserService
	Issuer      token.Issuer
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей. issuer может быть nil —
// тогда вход работает без выпуска токена.
func NewUserHandler(userService *service.UserService, issuer token.Issuer, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Issuer: issuer, Logger: logger, Config: cfg}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ValidatePasswordRequest struct {
	UserID   int64  `json:"userId"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Register регистрирует нового пользователя.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user.PublicProfile())
}

// Login проверяет учётные данные и возвращает публичный профиль.
// Если настроен issuer — дополнительно отдаёт JWT и ставит auth cookie;
// токен ничего не ограничивает.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	resp := map[string]any{
		"message": "Вход выполнен успешно.",
		"user":    user.PublicProfile(),
	}
	if h.Issuer != nil {
		if t, err := h.Issuer.Issue(user.ID, user.Email); err != nil {
			h.Logger.Warnw("Login: token issue failed", "user_id", user.ID, "error", err)
		} else {
			resp["token"] = t
		}
	}
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Warnw("Login: set cookie failed", "user_id", user.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Me возвращает профиль пользователя из auth cookie.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Не выполнен вход.")
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user.PublicProfile())
}

// ListUsers возвращает всех пользователей без паролей (отладочный маршрут).
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	profiles := make([]model.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}
	writeJSON(w, http.StatusOK, profiles)
}

// GetProfile возвращает публичный профиль пользователя.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user.PublicProfile())
}

// UpdateProfile обновляет имя, телефон и email пользователя.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateProfile: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.UserService.UpdateProfile(r.Context(), id, req.Email, req.Name, req.Phone); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Профиль успешно обновлен.")
}

// ValidatePassword сверяет пароль пользователя с сохранённым хешем.
func (h *UserHandler) ValidatePassword(w http.ResponseWriter, r *http.Request) {
	var req ValidatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ValidatePassword: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.UserService.ValidatePassword(r.Context(), req.UserID, req.Password); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Пароль подтвержден.")
}

// ChangePassword меняет пароль пользователя.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ChangePassword: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Пароль успешно изменён.")
}
