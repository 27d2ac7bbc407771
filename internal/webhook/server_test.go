package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/starcheck-bot/internal/config"
	"github.com/yourname/starcheck-bot/internal/store"
)

func newTestServer() (*Server, *store.Verifications) {
	cfg := config.Config{WebhookRPS: 1000, WebhookBurst: 1000}
	wallets := store.NewWallets()
	vouchers := store.NewVouchers(wallets, "testbot")
	admins := store.NewAdmins()
	verifs := store.NewVerifications()
	return New(cfg, vouchers, admins, verifs), verifs
}

func doJSON(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSubmissionAccepted(t *testing.T) {
	srv, verifs := newTestServer()

	w, resp := doJSON(t, srv, http.MethodPost, "/webhook",
		`{"phone":"+15551234567","code":"123456"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Verification data received", resp["message"])
	require.NotEmpty(t, resp["verification_id"])

	recent := verifs.RecentWebsite(50)
	require.Len(t, recent, 1)
	assert.Equal(t, resp["verification_id"], recent[0].ID)
	assert.Equal(t, "+15551234567", recent[0].Phone)
	assert.Equal(t, "123456", recent[0].Code)
}

func TestSubmissionPhoneWithoutPlus(t *testing.T) {
	srv, verifs := newTestServer()

	w, resp := doJSON(t, srv, http.MethodPost, "/webhook",
		`{"phone":"15551234567","code":"123456"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Phone must start with +", resp["error"])
	assert.Equal(t, 0, verifs.WebsiteCount())
}

func TestSubmissionBadCode(t *testing.T) {
	srv, _ := newTestServer()

	// шестисимвольные, но не шесть цифр: точка и знак тоже отклоняются
	for _, code := range []string{"12345", "1234567", "12a456", "123.45", "+12345", "-12345"} {
		w, resp := doJSON(t, srv, http.MethodPost, "/webhook",
			`{"phone":"+15551234567","code":"`+code+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, code)
		assert.Equal(t, "Code must be 6 digits", resp["error"], code)
	}
}

func TestSubmissionMissingFields(t *testing.T) {
	srv, _ := newTestServer()

	w, resp := doJSON(t, srv, http.MethodPost, "/webhook", `{"phone":"  ","code":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Phone or code missing", resp["error"])
}

func TestSubmissionNotJSON(t *testing.T) {
	srv, _ := newTestServer()

	w, resp := doJSON(t, srv, http.MethodPost, "/webhook", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data received", resp["error"])
}

func TestHealth(t *testing.T) {
	srv, verifs := newTestServer()
	verifs.SubmitFromWebsite("+15551234567", "123456", "10.0.0.1")
	verifs.SubmitFromSession(7, "+79991234567", "654321")

	w, resp := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "running", resp["status"])
	assert.Equal(t, float64(1), resp["verifications"])
	assert.Equal(t, float64(1), resp["bot_verifications"])
	assert.Equal(t, float64(0), resp["bot_checks"])
}

func TestStatus(t *testing.T) {
	srv, _ := newTestServer()

	w, resp := doJSON(t, srv, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, true, resp["bot_running"])
	assert.Equal(t, float64(0), resp["checks_count"])
	assert.Equal(t, float64(0), resp["admins_count"])
}

func TestRateLimit(t *testing.T) {
	cfg := config.Config{WebhookRPS: 1, WebhookBurst: 2}
	wallets := store.NewWallets()
	srv := New(cfg, store.NewVouchers(wallets, "testbot"), store.NewAdmins(), store.NewVerifications())

	body := `{"phone":"+15551234567","code":"123456"}`
	var last int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
