package adapter

import (
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bookmarks/internal/app"
)

// newTestResponse builds a body-less response; bodies are covered through
// httptest servers in http_test.go.
func newTestResponse(status int) *resty.Response {
	return &resty.Response{RawResponse: &http.Response{StatusCode: status}}
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message only", body: `{"statusCode":404,"message":"Not Found","error":"Not Found"}`, want: "Not Found"},
		{name: "message with field errors", body: `{"statusCode":400,"message":"Validation failed","errors":["email must be a valid email","password should not be empty"]}`, want: "Validation failed: email must be a valid email; password should not be empty"},
		{name: "plain text", body: "  boom \n", want: "boom"},
		{name: "json without message", body: `{"foo":"bar"}`, want: `{"foo":"bar"}`},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.body)))
		})
	}
}

func TestMapHTTPError_Status(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusOK, nil},
		{http.StatusCreated, nil},
		{http.StatusNoContent, nil},
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := mapHTTPError(newTestResponse(tt.status))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	err := mapHTTPError(newTestResponse(http.StatusTeapot))
	assert.EqualError(t, err, "http 418: I'm a teapot")
}

func TestForbiddenReasons(t *testing.T) {
	assert.Equal(t, ErrCredentialsTaken, forbiddenReasons[app.MsgCredentialsTaken])
	assert.Equal(t, ErrCredentialsIncorrect, forbiddenReasons[app.MsgCredentialsIncorrect])
	assert.Equal(t, ErrAccessDenied, forbiddenReasons[app.MsgAccessDenied])
}
