package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard-api/internal/database"
	"jobboard-api/internal/services"
)

type memStore struct {
	objects map[string][]byte
}

func (m *memStore) Put(_ context.Context, path string, data []byte, _ string) (string, error) {
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[path] = data
	return m.PublicURL(path), nil
}

func (m *memStore) Remove(_ context.Context, path string) error {
	if _, ok := m.objects[path]; !ok {
		return errors.New("no such object")
	}
	delete(m.objects, path)
	return nil
}

func (m *memStore) PublicURL(path string) string {
	return "https://storage.test/resumes/" + path
}

func newTestRouter(t *testing.T) (*gin.Engine, *memStore, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	store := &memStore{}
	userService := services.NewUserService(db, "test-secret")
	jobService := services.NewJobService(db, userService)
	resumeService := services.NewResumeService(db, store, userService)

	r := NewRouter(
		NewAuthHandler(userService),
		NewJobHandler(jobService),
		NewResumeHandler(resumeService),
	)
	return r, store, db
}

type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
	Count   *int           `json:"count"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) (msgs []any, count int) {
	t.Helper()
	var env struct {
		Data  []any `json:"data"`
		Count int   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data, env.Count
}

func signup(t *testing.T, r *gin.Engine, email, userType string) envelope {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/signup", map[string]string{
		"name":            "Jo",
		"email":           email,
		"password":        "pw123",
		"userType":        userType,
		"profileHeadline": "Engineer",
		"address":         "NY",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)
}

func createJob(t *testing.T, r *gin.Engine, posterEmail string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/job", map[string]string{
		"title":       "Backend Engineer",
		"description": "Build the job board",
		"companyName": "Acme",
		"email":       posterEmail,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	return env.Data["id"].(string)
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	env := signup(t, r, "jo@x.com", "Applicant")
	assert.True(t, env.Success)
	assert.Equal(t, "User registered successfully", env.Message)

	user := env.Data["user"].(map[string]any)
	assert.Equal(t, "jo@x.com", user["email"])
	assert.NotEmpty(t, env.Data["token"])

	// The credential never leaves the server in any spelling.
	body := strings.ToLower(func() string {
		raw, _ := json.Marshal(env)
		return string(raw)
	}())
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "pw123")
}

func TestSignupEndpointFailures(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", map[string]string{"email": "jo@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "All fields are required")

	signup(t, r, "jo@x.com", "Applicant")
	w = doJSON(t, r, http.MethodPost, "/auth/signup", map[string]string{
		"name": "Jo", "email": "jo@x.com", "password": "pw123",
		"userType": "Applicant", "profileHeadline": "Engineer", "address": "NY",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)
	signup(t, r, "jo@x.com", "Applicant")

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "jo@x.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data["token"])

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "jo@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w).Message)

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{"email": "jo@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobEndpoints(t *testing.T) {
	r, _, _ := newTestRouter(t)
	signup(t, r, "poster@x.com", "Applicant")
	jobID := createJob(t, r, "poster@x.com")

	w := doJSON(t, r, http.MethodGet, "/api/job/"+jobID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, jobID, env.Data["id"])
	assert.NotNil(t, env.Data["applicants"])

	w = doJSON(t, r, http.MethodGet, "/api/jobs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list, count := decodeList(t, w)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, count)

	w = doJSON(t, r, http.MethodGet, "/api/job/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid job ID format", decode(t, w).Message)

	w = doJSON(t, r, http.MethodGet, "/api/job/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decode(t, w).Message)
}

func TestApplyEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)
	signup(t, r, "poster@x.com", "Applicant")
	signup(t, r, "jo@x.com", "Applicant")
	signup(t, r, "admin@x.com", "Admin")
	jobID := createJob(t, r, "poster@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/job/"+jobID+"/apply", map[string]string{"email": "jo@x.com"})
	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.Equal(t, jobID, env.Data["jobId"])
	assert.Equal(t, "pending", env.Data["status"])

	// Second application for the same pair.
	w = doJSON(t, r, http.MethodPost, "/api/job/"+jobID+"/apply", map[string]string{"email": "jo@x.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "You have already applied to this job", decode(t, w).Message)

	// Admins cannot apply.
	w = doJSON(t, r, http.MethodPost, "/api/job/"+jobID+"/apply", map[string]string{"email": "admin@x.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Nonexistent job.
	w = doJSON(t, r, http.MethodPost, "/api/job/00000000-0000-0000-0000-000000000000/apply", map[string]string{"email": "jo@x.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decode(t, w).Message)
}

func TestApplicantEndpoints(t *testing.T) {
	r, _, _ := newTestRouter(t)
	env := signup(t, r, "jo@x.com", "Applicant")
	applicantID := env.Data["user"].(map[string]any)["id"].(string)
	signup(t, r, "admin@x.com", "Admin")

	w := doJSON(t, r, http.MethodGet, "/api/applicants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list, count := decodeList(t, w)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, count)

	w = doJSON(t, r, http.MethodGet, "/api/applicant/"+applicantID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jo@x.com", decode(t, w).Data["email"])

	w = doJSON(t, r, http.MethodGet, "/api/applicant/bad-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uploadResume(t *testing.T, r *gin.Engine, email, filename, contentType string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("email", email))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResumeEndpoints(t *testing.T) {
	r, store, _ := newTestRouter(t)
	signup(t, r, "jo@x.com", "Applicant")

	w := uploadResume(t, r, "jo@x.com", "cv.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data["resume_url"])
	assert.Len(t, store.objects, 1)

	w = doJSON(t, r, http.MethodGet, "/resume/getResume?email=jo@x.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, env.Data["resume_url"], decode(t, w).Data["resume_url"])

	w = doJSON(t, r, http.MethodDelete, "/resume/deleteResume", map[string]string{"email": "jo@x.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Resume deleted successfully", decode(t, w).Message)
	assert.Empty(t, store.objects)

	w = doJSON(t, r, http.MethodGet, "/resume/getResume?email=jo@x.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResumeUploadFilter(t *testing.T) {
	r, store, _ := newTestRouter(t)
	signup(t, r, "jo@x.com", "Applicant")
	signup(t, r, "admin@x.com", "Admin")

	t.Run("wrong mime type", func(t *testing.T) {
		w := uploadResume(t, r, "jo@x.com", "cv.txt", "text/plain", []byte("plain text"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Only PDF and DOCX files are allowed", decode(t, w).Message)
		assert.Empty(t, store.objects)
	})

	t.Run("oversized file", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), 2*1024*1024+1)
		w := uploadResume(t, r, "jo@x.com", "cv.pdf", "application/pdf", big)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.objects)
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("email", "jo@x.com"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/resume/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No file uploaded", decode(t, w).Message)
	})

	t.Run("admin forbidden", func(t *testing.T) {
		w := uploadResume(t, r, "admin@x.com", "cv.pdf", "application/pdf", []byte("%PDF-1.4"))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.objects)
	})
}
