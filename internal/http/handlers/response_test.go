package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_EnvelopeEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-123")
		Fail(c, http.StatusNotFound, "not_found", "nope")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.RequestID != "rid-123" || resp.Code != "not_found" || resp.Message != "nope" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestValidBase64(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"aW1hZ2U=", true},
		{"data:image/png;base64,aW1hZ2U=", true},
		{"data:image/png;aW1hZ2U=", false}, // prefix without base64 marker
		{"@@nope@@", false},
		{"", false},
		{"data:image/png;base64,", false},
	}
	for _, tc := range cases {
		if got := validBase64(tc.in); got != tc.want {
			t.Fatalf("validBase64(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
