package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/bootstrap"
	"justicehub-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		JWTSecret:       "test-secret",
		JWTExpiresIn:    time.Hour,
		MaxFileUpload:   5 << 20,
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		CORSAllowOrigin: []string{"http://localhost:5173"},
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
		"phone":    "9876543210",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("expected token in register response")
	}
	return out.Token
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	token := registerAndLogin(t, router, "asha@example.com")

	// Duplicate email is a conflict.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    "asha@example.com",
		"password": "secret123",
		"phone":    "9876543210",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp.Code)
	}

	// Login with bad password is 401.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", resp.Code)
	}

	// /me requires a token.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: expected 401, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var me struct {
		Success bool `json:"success"`
		Data    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.Data.Email != "asha@example.com" || me.Data.Role != "user" {
		t.Fatalf("unexpected identity: %+v", me.Data)
	}
}

func TestCaseLifecycle(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	owner := registerAndLogin(t, router, "owner@example.com")
	intruder := registerAndLogin(t, router, "intruder@example.com")

	// Create.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/cases", owner, gin.H{
		"caseType":    "DV",
		"title":       "Protection order follow-up",
		"description": "Hearing scheduled for next month",
		"location":    "Pune",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create case: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Data.Status != "Active" {
		t.Fatalf("expected default status Active, got %q", created.Data.Status)
	}
	caseID := created.Data.ID

	// Invalid case type is a 400 with the field message.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/cases", owner, gin.H{
		"caseType":    "Divorce",
		"title":       "t",
		"description": "d",
		"location":    "l",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("invalid case type: expected 400, got %d", resp.Code)
	}

	// Another user cannot read, update, or delete it.
	if resp := doJSON(t, router, http.MethodGet, "/api/v1/cases/"+caseID, intruder, nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("intruder get: expected 401, got %d", resp.Code)
	}
	if resp := doJSON(t, router, http.MethodPut, "/api/v1/cases/"+caseID, intruder, gin.H{"status": "Closed"}); resp.Code != http.StatusUnauthorized {
		t.Fatalf("intruder update: expected 401, got %d", resp.Code)
	}
	if resp := doJSON(t, router, http.MethodDelete, "/api/v1/cases/"+caseID, intruder, nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("intruder delete: expected 401, got %d", resp.Code)
	}

	// The intruder's list is empty.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/cases", intruder, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("intruder list: expected 200, got %d", resp.Code)
	}
	var list struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if list.Count != 0 {
		t.Fatalf("expected empty list for intruder, got count %d", list.Count)
	}

	// Owner reads the detail with their identity attached.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/cases/"+caseID, owner, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("owner get: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var detail struct {
		Data struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("decode detail response: %v", err)
	}
	if detail.Data.User.Email != "owner@example.com" {
		t.Fatalf("expected owner email in detail, got %q", detail.Data.User.Email)
	}

	// Owner updates and deletes.
	resp = doJSON(t, router, http.MethodPut, "/api/v1/cases/"+caseID, owner, gin.H{"status": "Won"})
	if resp.Code != http.StatusOK {
		t.Fatalf("owner update: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/cases/"+caseID, owner, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("owner delete: expected 200, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodGet, "/api/v1/cases/"+caseID, owner, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.Code)
	}
}

func TestDocumentUploadFlow(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	owner := registerAndLogin(t, router, "owner@example.com")

	resp := doJSON(t, router, http.MethodPost, "/api/v1/cases", owner, gin.H{
		"caseType":    "498A",
		"title":       "FIR challenge",
		"description": "Quashing petition drafted",
		"location":    "Mumbai",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create case: expected 201, got %d", resp.Code)
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	caseID := created.Data.ID

	upload := func(fileName string, content []byte) *httptest.ResponseRecorder {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		fileWriter, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fileWriter.Write(content); err != nil {
			t.Fatalf("write file: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("close writer: %v", err)
		}
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cases/"+caseID+"/documents", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+owner)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	// A PDF is accepted.
	resp2 := upload("fir-copy.pdf", []byte("%PDF-1.4\n%fake but sniffable pdf body"))
	if resp2.Code != http.StatusOK {
		t.Fatalf("upload pdf: expected 200, got %d: %s", resp2.Code, resp2.Body.String())
	}
	var uploaded struct {
		Data struct {
			ID     string `json:"id"`
			Format string `json:"format"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if uploaded.Data.Format != "pdf" {
		t.Fatalf("expected format pdf, got %q", uploaded.Data.Format)
	}

	// Plain text is rejected.
	resp2 = upload("notes.txt", []byte("just some meeting notes"))
	if resp2.Code != http.StatusBadRequest {
		t.Fatalf("upload txt: expected 400, got %d: %s", resp2.Code, resp2.Body.String())
	}

	// Listing shows the single accepted document.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/cases/"+caseID+"/documents", owner, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list documents: expected 200, got %d", resp.Code)
	}
	var docList struct {
		Count int `json:"count"`
		Data  []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&docList); err != nil {
		t.Fatalf("decode document list: %v", err)
	}
	if docList.Count != 1 || docList.Data[0].ID != uploaded.Data.ID {
		t.Fatalf("expected one uploaded document, got %+v", docList)
	}

	// Delete the document.
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/documents/"+uploaded.Data.ID, owner, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete document: expected 200, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/documents/"+uploaded.Data.ID, owner, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("delete missing document: expected 404, got %d", resp.Code)
	}
}
