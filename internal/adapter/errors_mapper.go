package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/models"
)

// forbiddenReasons narrows a 403 by the server's message.
var forbiddenReasons = map[string]error{
	app.MsgCredentialsTaken:     ErrCredentialsTaken,
	app.MsgCredentialsIncorrect: ErrCredentialsIncorrect,
	app.MsgAccessDenied:         ErrAccessDenied,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		var body models.ErrorResponse
		_ = json.Unmarshal(resp.Body(), &body)
		if reason, ok := forbiddenReasons[body.Message]; ok {
			return fmt.Errorf("%w: %w", ErrForbidden, reason)
		}
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorDetail renders a server error body. JSON error bodies yield the
// message followed by any field errors; anything else is returned trimmed.
func errorDetail(body []byte) string {
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Message == "" {
		return strings.TrimSpace(string(body))
	}

	if len(resp.Errors) == 0 {
		return resp.Message
	}
	return resp.Message + ": " + strings.Join(resp.Errors, "; ")
}
