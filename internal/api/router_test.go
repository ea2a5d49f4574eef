package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/resumehub/internal/api/handlers"
	"github.com/rohits-web03/resumehub/internal/api/middleware"
	"github.com/rohits-web03/resumehub/internal/api/services"
	"github.com/rohits-web03/resumehub/internal/config"
	"github.com/rohits-web03/resumehub/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "router-test-secret"
	janeSignUp   = `{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","password":"Password!1"}`
	janeResume   = "Jane Doe\njane@x.com\nBackend engineer"
	strongButBad = "Wrong!Pass1"
)

type testServer struct {
	handler http.Handler
	store   *repositories.MemoryStore
	auth    *services.AuthService
	dir     string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := repositories.NewMemoryStore()
	dir := t.TempDir()
	files, err := repositories.NewDiskFileStore(dir)
	require.NoError(t, err)

	auth := services.NewAuthService(store, services.AuthOptions{
		Secret:     []byte(testSecret),
		TokenTTL:   24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	h := handlers.New(handlers.Deps{
		Auth:           auth,
		Profiles:       services.NewProfileService(store),
		Files:          files,
		FrontendURL:    "http://localhost:5173",
		UploadMaxBytes: 1 << 20,
		Log:            zap.NewNop(),
	})
	cfg := config.Config{CorsOrigins: []string{"http://localhost:5173"}}
	return &testServer{
		handler: SetupRouter(h, cfg.CorsOptions(), zap.NewNop()),
		store:   store,
		auth:    auth,
		dir:     dir,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	t.Fatalf("response has no %q cookie", middleware.SessionCookie)
	return nil
}

type userEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ID    string `json:"_id"`
		Email string `json:"email"`
	} `json:"data"`
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) userEnvelope {
	t.Helper()
	var env userEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func signUpJane(t *testing.T, s *testServer) *http.Cookie {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/signup", janeSignUp, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is working", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = s.do(t, http.MethodGet, "/favicon.ico", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/auth/google/login", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/profiles", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSignUpThenLoginResolveSameUser(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", janeSignUp, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	signupCookie := sessionCookie(t, rec)
	created := decodeUser(t, rec)
	assert.True(t, created.Success)
	assert.Equal(t, services.UserID("Jane", "Doe", "jane@x.com"), created.Data.ID)
	assert.True(t, signupCookie.HttpOnly)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), signupCookie.Expires, time.Minute)

	rec = s.do(t, http.MethodPost, "/login", `{"email":"jane@x.com","password":"Password!1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loginCookie := sessionCookie(t, rec)

	for _, c := range []*http.Cookie{signupCookie, loginCookie} {
		rec = s.do(t, http.MethodGet, "/user/view", "", c)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, created.Data.ID, decodeUser(t, rec).Data.ID)
	}
}

func TestSignUp_Failures(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", `{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","password":"password"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Signup failed: Enter validate password", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())

	rec = s.do(t, http.MethodPost, "/signup", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	signUpJane(t, s)
	rec = s.do(t, http.MethodPost, "/signup", janeSignUp, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Signup failed: User already exists", rec.Body.String())
}

func TestLogin_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	s := newTestServer(t)
	signUpJane(t, s)

	wrong := s.do(t, http.MethodPost, "/login", `{"email":"jane@x.com","password":"`+strongButBad+`"}`, nil)
	unknown := s.do(t, http.MethodPost, "/login", `{"email":"ghost@x.com","password":"Password!1"}`, nil)

	assert.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, "Login failed: Wrong ID or Password", wrong.Body.String())
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestProtectedRoutes_RequireValidSession(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/profiles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Please login", rec.Body.String())

	cookie := signUpJane(t, s)
	tampered := &http.Cookie{Name: cookie.Name, Value: cookie.Value + "tampered"}
	rec = s.do(t, http.MethodGet, "/profiles", "", tampered)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ERR: "), rec.Body.String())

	expired, _, err := services.GenerateToken(services.UserID("Jane", "Doe", "jane@x.com"), []byte(testSecret), time.Now().Add(-48*time.Hour), 24*time.Hour)
	require.NoError(t, err)
	rec = s.do(t, http.MethodGet, "/profiles", "", &http.Cookie{Name: middleware.SessionCookie, Value: expired})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	session, err := s.auth.IssueSession("deleted-user")
	require.NoError(t, err)
	rec = s.do(t, http.MethodGet, "/user/view", "", &http.Cookie{Name: middleware.SessionCookie, Value: session.Token})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ERR: No user found", rec.Body.String())
}

func TestProfiles_AddAndList(t *testing.T) {
	s := newTestServer(t)
	cookie := signUpJane(t, s)

	body, _ := json.Marshal(map[string]string{"fileName": "jane.pdf", "fileContent": janeResume})

	var first, second struct {
		Success bool `json:"success"`
		Data    struct {
			ProfileID string `json:"profileId"`
		} `json:"data"`
	}
	rec := s.do(t, http.MethodPost, "/addProfile", string(body), cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	rec = s.do(t, http.MethodPost, "/addProfile", string(body), cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))

	assert.True(t, first.Success)
	assert.Equal(t, services.ProfileID("Jane Doe", "jane@x.com"), first.Data.ProfileID)
	assert.Equal(t, first.Data.ProfileID, second.Data.ProfileID)

	conflict, _ := json.Marshal(map[string]string{"fileName": "other.pdf", "fileContent": "Janet Roe\njane@x.com"})
	rec = s.do(t, http.MethodPost, "/addProfile", string(conflict), cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "already exists under a different profile")

	noEmail, _ := json.Marshal(map[string]string{"fileName": "x.pdf", "fileContent": "Jane Doe only"})
	rec = s.do(t, http.MethodPost, "/addProfile", string(noEmail), cookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required identifiers from resume")

	rec = s.do(t, http.MethodPost, "/addProfile", `{"fileName":"x.pdf"}`, cookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required identifiers from resume")

	rec = s.do(t, http.MethodPost, "/addProfile", `{"fileName":`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/profiles", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			ID       string `json:"_id"`
			Name     string `json:"name"`
			FileName string `json:"fileName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.True(t, list.Success)
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Jane Doe", list.Data[0].Name)
	assert.Equal(t, "jane.pdf", list.Data[0].FileName)
}

func TestProfiles_EmptyListHasZeroCount(t *testing.T) {
	s := newTestServer(t)
	cookie := signUpJane(t, s)

	rec := s.do(t, http.MethodGet, "/profiles", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	s := newTestServer(t)
	cookie := signUpJane(t, s)

	rec := s.do(t, http.MethodPost, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully : jane@x.com", rec.Body.String())

	cleared := sessionCookie(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	rec = s.do(t, http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (s *testServer) upload(t *testing.T, field, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, field, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestUploadResume(t *testing.T) {
	s := newTestServer(t)

	rec := s.upload(t, "resume", "jane cv.txt", janeResume)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Message  string `json:"message"`
		FilePath string `json:"filePath"`
		FileName string `json:"fileName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Resume uploaded successfully", resp.Message)
	assert.Equal(t, "jane cv.txt", resp.FileName)
	assert.True(t, strings.HasPrefix(resp.FilePath, s.dir), resp.FilePath)
	assert.True(t, strings.HasSuffix(resp.FilePath, "_jane_cv.txt"), resp.FilePath)

	data, err := os.ReadFile(resp.FilePath)
	require.NoError(t, err)
	assert.Equal(t, janeResume, string(data))
}

func TestUploadResume_Rejects(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name, field, filename string
	}{
		{"wrong field", "file", "cv.pdf"},
		{"wrong type", "resume", "cv.exe"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.upload(t, tc.field, tc.filename, "data")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"No file uploaded or invalid file type"}`, rec.Body.String())
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-resume", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.upload(t, "resume", "big.txt", strings.Repeat("a", 2<<20))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
