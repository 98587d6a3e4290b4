package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0}, calculation.NewCalculationEngine(), session.NewStore(time.Hour), zap.NewNop().Sugar())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func createSession(t *testing.T, s *Server) string {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, ok := decode(t, rec)["sessionId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, contains string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, float64(status), body["status"])
	assert.Contains(t, body["message"], contains)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestServer_WizardFlow(t *testing.T) {
	s := newTestServer(t)
	id := createSession(t, s)

	steps := []struct {
		step string
		body string
	}{
		{StepLocation, `{"state":"ca"}`},
		{StepHousehold, `{"ageRange":"30-44","familyStatus":"married-joint","numberOfQualifyingChildren":2}`},
		{StepEmployment, `{"employmentStatus":"full-time"}`},
		{StepHealthcare, `{"insuranceType":"employer"}`},
		{StepIncome, `{"incomeRange":"100k-150k","includeBigBill":true}`},
	}
	for _, st := range steps {
		rec := do(t, s, http.MethodPut, "/api/sessions/"+id+"/steps/"+st.step, st.body)
		require.Equal(t, http.StatusOK, rec.Code, "%s: %s", st.step, rec.Body.String())
	}

	rec := do(t, s, http.MethodGet, "/api/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decode(t, rec)
	assert.Equal(t, []any{"location", "household", "employment", "healthcare", "income"}, snapshot["completedSteps"])
	form := snapshot["formData"].(map[string]any)
	assert.Equal(t, "CA", form["state"])
	assert.Equal(t, float64(2), form["numberOfQualifyingChildren"])
	assert.Nil(t, snapshot["results"])

	rec = do(t, s, http.MethodPost, "/api/sessions/"+id+"/calculate", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	results := decode(t, rec)
	assert.Equal(t, float64(17451), results["netAnnualImpact"])
	assert.Equal(t, float64(125000), results["income"])
	assert.Equal(t, "current-law", results["scenario"])
	bigBill, ok := results["bigBillScenario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(10693), bigBill["netAnnualImpact"])

	rec = do(t, s, http.MethodGet, "/api/sessions/"+id+"/results", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(17451), decode(t, rec)["netAnnualImpact"])

	// changing a step invalidates stored results
	rec = do(t, s, http.MethodPut, "/api/sessions/"+id+"/steps/employment", `{"employmentStatus":"retired"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, s, http.MethodGet, "/api/sessions/"+id+"/results", "")
	assertError(t, rec, http.StatusNotFound, "results not available")
}

func TestServer_StepValidation(t *testing.T) {
	s := newTestServer(t)
	id := createSession(t, s)

	tests := []struct {
		name     string
		step     string
		body     string
		status   int
		contains string
	}{
		{"bad age range", StepHousehold, `{"ageRange":"12-17","familyStatus":"single"}`, http.StatusBadRequest, "validation failed: ageRange must be one of"},
		{"missing family status", StepHousehold, `{"ageRange":"30-44"}`, http.StatusBadRequest, "familyStatus is required"},
		{"too many children", StepHousehold, `{"ageRange":"30-44","familyStatus":"single","numberOfQualifyingChildren":11}`, http.StatusBadRequest, "numberOfQualifyingChildren must be at most 10"},
		{"short zip", StepLocation, `{"zipCode":"9021"}`, http.StatusBadRequest, "zipCode must be 5 characters"},
		{"letters in zip", StepLocation, `{"zipCode":"9021a"}`, http.StatusBadRequest, "zipCode must contain only digits"},
		{"empty location", StepLocation, `{}`, http.StatusBadRequest, "requires zipCode or state"},
		{"unknown employment", StepEmployment, `{"employmentStatus":"gig"}`, http.StatusBadRequest, "employmentStatus must be one of"},
		{"hsa with medicare", StepHealthcare, `{"insuranceType":"medicare","hasHSA":true}`, http.StatusBadRequest, "hasHSA is not available with medicare coverage"},
		{"unknown income", StepIncome, `{"incomeRange":"millions"}`, http.StatusBadRequest, "incomeRange must be one of"},
		{"malformed body", StepIncome, `{"incomeRange":`, http.StatusBadRequest, "invalid request body"},
		{"unknown step", "pets", `{}`, http.StatusNotFound, "unknown step: pets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPut, "/api/sessions/"+id+"/steps/"+tt.step, tt.body)
			assertError(t, rec, tt.status, tt.contains)
		})
	}

	rec := do(t, s, http.MethodGet, "/api/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["completedSteps"], "rejected steps are not recorded")
}

func TestServer_MissingSession(t *testing.T) {
	s := newTestServer(t)

	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/sessions/nope", ""},
		{http.MethodDelete, "/api/sessions/nope", ""},
		{http.MethodPut, "/api/sessions/nope/steps/employment", `{"employmentStatus":"retired"}`},
		{http.MethodPost, "/api/sessions/nope/calculate", ""},
		{http.MethodGet, "/api/sessions/nope/results", ""},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			assertError(t, do(t, s, req.method, req.path, req.body), http.StatusNotFound, "session not found")
		})
	}
}

func TestServer_DeleteSession(t *testing.T) {
	s := newTestServer(t)
	id := createSession(t, s)

	rec := do(t, s, http.MethodDelete, "/api/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/sessions/"+id, "")
	assertError(t, rec, http.StatusNotFound, "session not found")
}

func TestServer_CalculateEmptySession(t *testing.T) {
	s := newTestServer(t)
	id := createSession(t, s)

	rec := do(t, s, http.MethodPost, "/api/sessions/"+id+"/calculate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode(t, rec)
	assert.Equal(t, float64(-506), results["netAnnualImpact"])
	assert.NotContains(t, results, "bigBillScenario")
}

func TestServer_StatelessCalculate(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/calculate",
		`{"zipCode":"78701","ageRange":"18-29","familyStatus":"single","employmentStatus":"self-employed","insuranceType":"marketplace","incomeRange":"25k-50k","includeBigBill":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	results := decode(t, rec)
	assert.Equal(t, float64(1521), results["netAnnualImpact"])
	assert.Equal(t, float64(-525), results["stateAdjustment"])
	assert.Len(t, results["breakdown"], 5)
	assert.Equal(t, "2025-07-01", results["lastUpdated"])

	rec = do(t, s, http.MethodPost, "/api/calculate", `{"ageRange":"100+"}`)
	assertError(t, rec, http.StatusBadRequest, `unknown age range "100+"`)

	rec = do(t, s, http.MethodPost, "/api/calculate", `not json`)
	assertError(t, rec, http.StatusBadRequest, "invalid request body")
}

func TestServer_Metadata(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/reference/metadata", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "2025-07-01", body["last_updated"])
	assert.Equal(t, float64(2025), body["data_year"])
}

func TestServer_CORS(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodOptions, "/api/calculate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := New(Config{Port: 0, ShutdownTimeout: time.Second}, calculation.NewCalculationEngine(), session.NewStore(time.Hour), nil)
	assert.Equal(t, time.Second, s.shutdownTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_DefaultShutdownTimeout(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, 10*time.Second, s.shutdownTimeout)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&ErrValidation{Field: "ageRange", Message: "is required"}, http.StatusBadRequest},
		{&ErrBadRequest{Err: errors.New("eof")}, http.StatusBadRequest},
		{&ErrUnknownStep{Step: "pets"}, http.StatusNotFound},
		{session.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", session.ErrNotFound), http.StatusNotFound},
		{ErrNoResults, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Error(t *testing.T) {
	assert.Equal(t, "validation failed: ageRange is required", (&ErrValidation{Field: "ageRange", Message: "is required"}).Error())
	assert.Equal(t, "validation failed: bad form", (&ErrValidation{Message: "bad form"}).Error())
}
