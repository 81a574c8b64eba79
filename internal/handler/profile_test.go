package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

func TestGetProfile_Found(t *testing.T) {
	profiles := &mockProfileService{
		GetFunc: func(ctx context.Context, userID string) (domain.MemberProfile, error) {
			require.Equal(t, "user-1", userID)
			return domain.MemberProfile{Name: "Sofia Ramirez", PersonalityType: "ENFP"}, nil
		},
	}
	s := newTestServer(nil, nil, nil, profiles, nil)

	rec := doRequest(t, s, http.MethodGet, "/profiles/user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data domain.MemberProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ENFP", body.Data.PersonalityType)
}

func TestGetProfile_MissingIs404(t *testing.T) {
	profiles := &mockProfileService{
		GetFunc: func(ctx context.Context, userID string) (domain.MemberProfile, error) {
			return domain.MemberProfile{}, fmt.Errorf("repo.pgProfileRepo.Get: %w", domain.ErrNotFound)
		},
	}
	s := newTestServer(nil, nil, nil, profiles, nil)

	rec := doRequest(t, s, http.MethodGet, "/profiles/user-9", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveProfile_Upserts(t *testing.T) {
	var gotID string
	var gotProfile domain.MemberProfile
	profiles := &mockProfileService{
		SaveFunc: func(ctx context.Context, userID string, p domain.MemberProfile) error {
			gotID = userID
			gotProfile = p
			return nil
		},
	}
	s := newTestServer(nil, nil, nil, profiles, nil)

	rec := doRequest(t, s, http.MethodPut, "/profiles/user-1", map[string]any{
		"name":             "Sofia Ramirez",
		"personality_type": "ENFP",
		"travel_months":    []string{"June", "September"},
	})

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-1", gotID)
	assert.Equal(t, "Sofia Ramirez", gotProfile.Name)
	assert.Equal(t, []string{"June", "September"}, gotProfile.TravelMonths)
}

func TestSaveProfile_ValidationIs422(t *testing.T) {
	profiles := &mockProfileService{
		SaveFunc: func(ctx context.Context, userID string, p domain.MemberProfile) error {
			return fmt.Errorf("service.ProfileService.Save: %w: name is required", domain.ErrValidation)
		},
	}
	s := newTestServer(nil, nil, nil, profiles, nil)

	rec := doRequest(t, s, http.MethodPut, "/profiles/user-1", map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error.Message, "name is required")
}

func TestSaveProfile_MalformedBodyIs422(t *testing.T) {
	s := newTestServer(nil, nil, nil, &mockProfileService{}, nil)

	req, rec := rawRequest(t, http.MethodPut, "/profiles/user-1", "{oops")
	s.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteProfile(t *testing.T) {
	var gotID string
	profiles := &mockProfileService{
		DeleteFunc: func(ctx context.Context, userID string) error {
			gotID = userID
			return nil
		},
	}
	s := newTestServer(nil, nil, nil, profiles, nil)

	rec := doRequest(t, s, http.MethodDelete, "/profiles/user-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-1", gotID)
}

func TestDeleteProfile_MissingIs404(t *testing.T) {
	profiles := &mockProfileService{
		DeleteFunc: func(ctx context.Context, userID string) error {
			return fmt.Errorf("repo.pgProfileRepo.Delete: %w", domain.ErrNotFound)
		},
	}
	s := newTestServer(nil, nil, nil, profiles, nil)

	rec := doRequest(t, s, http.MethodDelete, "/profiles/user-9", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
