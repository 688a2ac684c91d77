package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sportmate/config"
	"sportmate/models"
	"sportmate/routes"
	"sportmate/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest 给每个测试一个独立的内存数据库和完整路由
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	config.DB = db
	models.Migrate()
	return routes.RegisterRoutes()
}

func createUser(t *testing.T, name, email string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		UserName:     name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "User",
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := services.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// decodeData 解开统一响应里的 data 字段
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

// befriend 建立一条已接受的好友边
func befriend(t *testing.T, a, b models.User) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.Friendship{
		UserID:   a.ID,
		FriendID: b.ID,
		Status:   models.FriendshipAccepted,
	}).Error)
}

// startConversation 通过接口建立会话并返回 ID
func startConversation(t *testing.T, r *gin.Engine, starter models.User, receiver models.User) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/friends/conversations", tokenFor(t, starter),
		map[string]interface{}{"receiver_id": receiver.ID})

	var data struct {
		ConversationID string `json:"conversation_id"`
	}
	decodeData(t, w, &data)
	require.NotEmpty(t, data.ConversationID)
	return data.ConversationID
}
