package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/register", "",
		map[string]interface{}{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
	var registered struct {
		Token  string `json:"token"`
		UserID uint   `json:"user_id"`
	}
	decodeData(t, w, &registered)
	require.NotEmpty(t, registered.Token)

	// 重复邮箱 → 400
	w = doRequest(t, r, http.MethodPost, "/api/register", "",
		map[string]interface{}{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "password123",
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/login", "",
		map[string]interface{}{"email": "alice@example.com", "password": "password123"})
	var logged struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &logged)
	require.NotEmpty(t, logged.Token)

	// 错误密码 → 401
	w = doRequest(t, r, http.MethodPost, "/api/login", "",
		map[string]interface{}{"email": "alice@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 拿 token 取用户信息
	w = doRequest(t, r, http.MethodGet, "/api/userinfo", logged.Token, nil)
	var info struct {
		ID       uint   `json:"id"`
		UserName string `json:"username"`
		Email    string `json:"email"`
	}
	decodeData(t, w, &info)
	assert.Equal(t, registered.UserID, info.ID)
	assert.Equal(t, "alice", info.UserName)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupTest(t)

	for _, path := range []string{
		"/api/userinfo",
		"/api/friends",
		"/api/friends/conversations",
		"/api/notifications",
	} {
		w := doRequest(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doRequest(t, r, http.MethodGet, "/api/friends", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r := setupTest(t)
	alice := createUser(t, "alice", "alice@example.com")

	w := doRequest(t, r, http.MethodPut, "/api/userinfo", tokenFor(t, alice),
		map[string]interface{}{"age": 27, "location": "Hanoi", "gender": "female"})
	var info struct {
		Age      int    `json:"age"`
		Location string `json:"location"`
		Gender   string `json:"gender"`
	}
	decodeData(t, w, &info)
	assert.Equal(t, 27, info.Age)
	assert.Equal(t, "Hanoi", info.Location)
	assert.Equal(t, "female", info.Gender)
}
