package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSportAndDiscovery(t *testing.T) {
	r := setupTest(t)
	alice := createUser(t, "alice", "alice@example.com")
	bob := createUser(t, "bob", "bob@example.com")

	w := doRequest(t, r, http.MethodPost, "/api/players/register", tokenFor(t, alice),
		map[string]interface{}{"sport": "Badminton", "skill_level": "intermediate"})
	require.Equal(t, http.StatusOK, w.Code)

	// 重复注册 → 400（大小写不敏感）
	w = doRequest(t, r, http.MethodPost, "/api/players/register", tokenFor(t, alice),
		map[string]interface{}{"sport": "badminton"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 没人注册的项目 → 404
	w = doRequest(t, r, http.MethodGet, "/api/players/tennis", tokenFor(t, bob), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/players/badminton", tokenFor(t, bob), nil)
	var players []struct {
		UserID   uint   `json:"user_id"`
		UserName string `json:"username"`
	}
	decodeData(t, w, &players)
	require.Len(t, players, 1)
	assert.Equal(t, alice.ID, players[0].UserID)
}

func TestGetPlayerDetails(t *testing.T) {
	r := setupTest(t)
	alice := createUser(t, "alice", "alice@example.com")
	bob := createUser(t, "bob", "bob@example.com")

	w := doRequest(t, r, http.MethodPost, "/api/players/register", tokenFor(t, alice),
		map[string]interface{}{"sport": "Football"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/players/details/%d", alice.ID), tokenFor(t, bob), nil)
	var detail struct {
		UserID   uint     `json:"user_id"`
		UserName string   `json:"username"`
		Sports   []string `json:"sports"`
	}
	decodeData(t, w, &detail)
	assert.Equal(t, alice.ID, detail.UserID)
	assert.Equal(t, []string{"Football"}, detail.Sports)

	w = doRequest(t, r, http.MethodGet, "/api/players/details/9999", tokenFor(t, bob), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
