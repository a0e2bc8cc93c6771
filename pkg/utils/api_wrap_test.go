package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrSessionNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: id 7", ErrPackageNotFound), http.StatusNotFound},
		{ErrStepIncomplete, http.StatusUnprocessableEntity},
		{ErrUnknownOption, http.StatusBadRequest},
		{ErrQuizSubmitted, http.StatusConflict},
		{ErrQuizNotSubmitted, http.StatusConflict},
		{fmt.Errorf("%w: status 500", ErrPackageGenerationFailed), http.StatusBadGateway},
		{ErrMalformedResponse, http.StatusBadGateway},
		{ErrRendererUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if code, _ := StatusFor(tc.err); code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestHandleServiceError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-123")

	HandleServiceError(c, ErrSessionNotFound)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Status != "error" || resp.Code != http.StatusNotFound || resp.TraceID != "trace-123" {
		t.Errorf("unexpected envelope %+v", resp)
	}
}
