package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestBarStationHandler_AdminOnlyRoutes(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)
	stationPath := fmt.Sprintf("/api/bar-stations/%d", b.stationID)
	update := map[string]interface{}{
		"name":      "Renamed bar",
		"is_active": true,
		"user_ids":  []string{},
	}

	w := b.bartender.do(http.MethodGet, "/api/bar-stations", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, apierrors.ErrCodeForbidden, errorCode(t, w))

	w = b.bartender.do(http.MethodPut, stationPath, update)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = b.bartender.do(http.MethodDelete, stationPath, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Members can still read the station they work at.
	w = b.bartender.do(http.MethodGet, stationPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = b.admin.do(http.MethodGet, "/api/bar-stations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stations []dto.BarStationDTO
	decode(t, w, &stations)
	require.Len(t, stations, 1)
}

func TestBarStationHandler_OtherOrganizationAdmin(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)
	stationPath := fmt.Sprintf("/api/bar-stations/%d", b.stationID)

	rival := env.signup(t, "rival@example.com", "Rival")
	org := createOrganization(t, rival, "Rival Bar")
	onboard(t, rival, org.ID)

	w := rival.do(http.MethodPut, stationPath, map[string]interface{}{
		"name":      "Taken over",
		"is_active": true,
		"user_ids":  []string{},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = rival.do(http.MethodDelete, stationPath, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = b.admin.do(http.MethodGet, stationPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var station dto.BarStationDTO
	decode(t, w, &station)
	require.Equal(t, "Main bar", station.Name)
	require.Len(t, station.Users, 1)
}

func TestBarStationHandler_UpdateAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)
	stationPath := fmt.Sprintf("/api/bar-stations/%d", b.stationID)

	w := b.bartender.do(http.MethodGet, "/api/bar-stations/user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var assigned []dto.BarStationDTO
	decode(t, w, &assigned)
	require.Len(t, assigned, 1)

	w = b.admin.do(http.MethodPut, stationPath, map[string]interface{}{
		"name":        "Renamed bar",
		"description": "Upstairs",
		"is_active":   true,
		"user_ids":    []string{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var station dto.BarStationDTO
	decode(t, w, &station)
	require.Equal(t, "Renamed bar", station.Name)
	require.Empty(t, station.Users)

	w = b.bartender.do(http.MethodGet, "/api/bar-stations/user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &assigned)
	require.Empty(t, assigned)

	w = b.admin.do(http.MethodDelete, stationPath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = b.admin.do(http.MethodGet, stationPath, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
