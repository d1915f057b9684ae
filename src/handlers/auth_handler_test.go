package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"findash-server/src/db/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mem := memory.New()

	body := strings.NewReader(`{
		"email": "carol@example.com",
		"username": "carol",
		"first_name": "Carol",
		"last_name": "Jones",
		"password": "Str0ng!pass"
	}`)
	rr := httptest.NewRecorder()
	Register(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/register", body))

	require.Equal(t, http.StatusCreated, rr.Code)
	var registerResp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registerResp))
	assert.NotEmpty(t, registerResp["token"])
	require.Len(t, mem.Users, 1)

	rr = httptest.NewRecorder()
	Login(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"carol","password":"Str0ng!pass"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	var loginResp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp["token"])

	// Login also establishes the session cookie used by the pages.
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session", cookies[0].Name)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mem := memory.New()

	rr := httptest.NewRecorder()
	Register(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{
		"email": "carol@example.com",
		"username": "carol",
		"password": "Str0ng!pass"
	}`)))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	Login(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"carol","password":"wrong"}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"nope","username":"carol","password":"Str0ng!pass"}`},
		{"short username", `{"email":"carol@example.com","username":"ab","password":"Str0ng!pass"}`},
		{"weak password", `{"email":"carol@example.com","username":"carol","password":"password"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := memory.New()
			rr := httptest.NewRecorder()
			Register(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, mem.Users)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mem := memory.New()
	payload := `{"email":"carol@example.com","username":"carol","password":"Str0ng!pass"}`

	rr := httptest.NewRecorder()
	Register(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(payload)))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	Register(mem)(rr, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(payload)))
	assert.Equal(t, http.StatusConflict, rr.Code)
}
