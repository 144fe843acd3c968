package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"BarterAPI/internal/config"
	"BarterAPI/internal/middleware"
	"BarterAPI/internal/service"
	"BarterAPI/internal/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	listingService *service.ListingService,
	favoriteService *service.FavoriteService,
	issuer token.Issuer,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, issuer, logger, config)
	listingHandler := NewListingHandler(listingService, logger, config)
	favoriteHandler := NewFavoriteHandler(favoriteService, logger)

	// Auth routes
	r.Post("/api/auth/login", userHandler.Login)
	r.Get("/api/auth/me", userHandler.Me)

	// User routes
	r.Get("/api/users", userHandler.ListUsers)
	r.Post("/api/users/register", userHandler.Register)
	r.Get("/api/users/profile/{id}", userHandler.GetProfile)
	r.Get("/api/users/{id}", userHandler.GetProfile)
	r.Put("/api/users/update/{id}", userHandler.UpdateProfile)
	r.Post("/api/users/validate-password", userHandler.ValidatePassword)
	r.Put("/api/users/change-password/{id}", userHandler.ChangePassword)

	// Listing routes
	r.Get("/api/listings", listingHandler.Search)
	r.Get("/api/listings/all", listingHandler.All)
	r.Post("/api/listings", listingHandler.Create)
	r.Post("/api/listings/upload", listingHandler.UploadPhoto)
	r.Get("/api/listings/user/{id}", listingHandler.UserListings)
	r.Get("/api/listings/archived/{userId}", listingHandler.ArchivedListings)
	r.Put("/api/listings/archive/{id}", listingHandler.Archive)
	r.Get("/api/listings/{id}", listingHandler.GetByID)
	r.Put("/api/listings/{id}", listingHandler.Update)

	// Favorite routes
	r.Post("/api/favorites", favoriteHandler.Add)
	r.Get("/api/favorites/user/{userId}", favoriteHandler.ListForUser)
	r.Delete("/api/favorites/user/{userId}/listing/{listingId}", favoriteHandler.Remove)

	// Раздача загруженных фотографий
	fs := http.StripPrefix("/images/", http.FileServer(http.Dir(config.UploadDir)))
	r.Get("/images/*", fs.ServeHTTP)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage — ответ вида {"message": "..."}.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeServiceError переводит доменные ошибки в HTTP-статусы. Ошибки стора
// наружу не просачиваются — только обобщённый internal error.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Некорректные данные.",
			"errors":  verr.Violations,
		})
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "Пользователь не найден.")
	case errors.Is(err, service.ErrListingNotFound):
		writeMessage(w, http.StatusNotFound, "Объявление не найдено.")
	case errors.Is(err, service.ErrFavoriteNotFound):
		writeMessage(w, http.StatusNotFound, "Запись в избранном не найдена.")
	case errors.Is(err, service.ErrEmailTaken):
		writeMessage(w, http.StatusConflict, "Пользователь с таким email уже существует.")
	case errors.Is(err, service.ErrFavoriteExists):
		writeMessage(w, http.StatusConflict, "Уже в избранном.")
	case errors.Is(err, service.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, "Неверный пароль.")
	default:
		logger.Errorw("internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
