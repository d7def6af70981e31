package raters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soccerlab/rater-api/api/types"
	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/profiles"
)

// Mock profile service for testing
type mockProfileService struct {
	saveFunc func(ctx context.Context, profile *models.Profile) error
	hasFunc  func(ctx context.Context, userID string) (bool, error)
	listFunc func(ctx context.Context) ([]profiles.StoredProfile, int, error)
}

func (m *mockProfileService) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileService) HasProfile(ctx context.Context, userID string) (bool, error) {
	if m.hasFunc != nil {
		return m.hasFunc(ctx, userID)
	}
	return false, nil
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]profiles.StoredProfile, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, 0, nil
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/raters"), deps)
	return router
}

func TestDeriveID(t *testing.T) {
	router := setupRouter(&types.Dependencies{})

	tests := []struct {
		name       string
		body       map[string]interface{}
		expectedID string
	}{
		{
			name: "complete answers",
			body: map[string]interface{}{
				"mother_initials": "an",
				"father_initials": "jo",
				"birth_day":       5,
				"birth_month":     7,
				"birth_year":      1990,
				"siblings":        2,
			},
			expectedID: "anjo1257",
		},
		{
			name: "uppercase initials are normalized",
			body: map[string]interface{}{
				"mother_initials": "AN",
				"father_initials": "JO",
				"birth_day":       5,
				"birth_month":     7,
				"birth_year":      1990,
				"siblings":        2,
			},
			expectedID: "anjo1257",
		},
		{
			name: "missing initials degrade to the sentinel",
			body: map[string]interface{}{
				"birth_day":   5,
				"birth_month": 7,
				"birth_year":  1990,
			},
			expectedID: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/raters/derive-id", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response types.DeriveIDResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedID, response.UserID)
		})
	}
}

func TestDeriveIDInvalidBody(t *testing.T) {
	router := setupRouter(&types.Dependencies{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/raters/derive-id", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProfile(t *testing.T) {
	var saved *models.Profile
	deps := &types.Dependencies{
		ProfileService: &mockProfileService{
			saveFunc: func(ctx context.Context, profile *models.Profile) error {
				saved = profile
				return nil
			},
		},
	}
	router := setupRouter(deps)

	body := map[string]interface{}{
		"user_id":    "anjo1257",
		"gender":     "female",
		"age":        27,
		"license":    "none",
		"player_exp": 8,
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/raters", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "anjo1257", saved.UserID)
	assert.Equal(t, 27, saved.Age)
	assert.Equal(t, 8, saved.PlayerExp)

	var response types.RaterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.HasProfile)
}

func TestCreateProfileMissingUserID(t *testing.T) {
	deps := &types.Dependencies{
		ProfileService: &mockProfileService{
			saveFunc: func(ctx context.Context, profile *models.Profile) error {
				return profiles.ErrMissingUserID
			},
		},
	}
	router := setupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/raters", bytes.NewReader([]byte(`{"gender":"male"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// The binding rejects the missing user_id before the service is hit
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRater(t *testing.T) {
	stored := profiles.StoredProfile{
		Profile: models.Profile{UserID: "anjo1257", Gender: "female"},
	}
	deps := &types.Dependencies{
		ProfileService: &mockProfileService{
			hasFunc: func(ctx context.Context, userID string) (bool, error) {
				return userID == "anjo1257", nil
			},
			listFunc: func(ctx context.Context) ([]profiles.StoredProfile, int, error) {
				return []profiles.StoredProfile{stored}, 0, nil
			},
		},
	}
	router := setupRouter(deps)

	t.Run("known rater includes the profile", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/raters/anjo1257", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.RaterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.HasProfile)
		require.NotNil(t, response.Profile)
		assert.Equal(t, "female", response.Profile.Gender)
	})

	t.Run("unknown rater has no profile", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/raters/nobody99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.RaterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.HasProfile)
		assert.Nil(t, response.Profile)
	})
}
