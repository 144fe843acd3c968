package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"BarterAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func registerUser(t *testing.T, router http.Handler, email string) int64 {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"Abc123","name":"User","phone":"+7"}`, email)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rr.Code, rr.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&created)
	return created.ID
}

func addFavorite(t *testing.T, router http.Handler, userID, listingID int64) *httptest.ResponseRecorder {
	t.Helper()
	body := fmt.Sprintf(`{"userId":%d,"listingId":%d}`, userID, listingID)
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestFavorite_Add(t *testing.T) {
	router, _, _ := newTestRouter(t)

	userID := registerUser(t, router, "fav@mail.ru")
	listing := createListing(t, router, `{"userId":1,"title":"Книга","condition":"б/у","description":"Роман","category":"книги","city":"Тверь","photoPath":"/images/k.jpg"}`)

	t.Run("ok", func(t *testing.T) {
		rr := addFavorite(t, router, userID, listing.ID)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Добавлено в избранное.")
	})

	t.Run("second add is conflict", func(t *testing.T) {
		rr := addFavorite(t, router, userID, listing.ID)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "Уже в избранном.")
	})

	t.Run("unknown user", func(t *testing.T) {
		rr := addFavorite(t, router, 9999, listing.ID)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Пользователь не найден.")
	})

	t.Run("unknown listing", func(t *testing.T) {
		rr := addFavorite(t, router, userID, 9999)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Объявление не найдено.")
	})
}

func TestFavorite_ListAndRemove(t *testing.T) {
	router, _, _ := newTestRouter(t)

	userID := registerUser(t, router, "lister@mail.ru")
	active := createListing(t, router, `{"userId":1,"title":"Гитара","condition":"б/у","description":"Шестиструнная","category":"музыка","city":"Сочи","photoPath":"/images/g.jpg"}`)
	toArchive := createListing(t, router, `{"userId":1,"title":"Пианино","condition":"б/у","description":"Старое","category":"музыка","city":"Сочи","photoPath":"/images/p.jpg"}`)

	assert.Equal(t, http.StatusOK, addFavorite(t, router, userID, active.ID).Code)
	assert.Equal(t, http.StatusOK, addFavorite(t, router, userID, toArchive.ID).Code)

	listFavorites := func(t *testing.T) []model.Listing {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/favorites/user/%d", userID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		var list []model.Listing
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&list)
		return list
	}

	t.Run("list returns both", func(t *testing.T) {
		list := listFavorites(t)
		assert.Len(t, list, 2)
	})

	t.Run("archived listing drops out of the list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/listings/archive/%d", toArchive.ID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		list := listFavorites(t)
		if assert.Len(t, list, 1) {
			assert.Equal(t, active.ID, list[0].ID)
		}
	})

	t.Run("remove", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/favorites/user/%d/listing/%d", userID, active.ID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Удалено из избранного.")

		assert.Empty(t, listFavorites(t))
	})

	t.Run("remove again is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/favorites/user/%d/listing/%d", userID, active.ID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("empty favorites of another user", func(t *testing.T) {
		other := registerUser(t, router, "empty@mail.ru")
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/favorites/user/%d", other), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}
