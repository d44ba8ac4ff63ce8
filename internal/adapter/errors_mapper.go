package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a vendor error page ends up in the error.
const maxErrorBody = 200

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and otherwise an error carrying
// a trimmed excerpt of the body. Known statuses wrap their sentinel.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	excerpt := strings.TrimSpace(string(resp.Body()))
	if len(excerpt) > maxErrorBody {
		excerpt = excerpt[:maxErrorBody]
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, excerpt)
	}
	if excerpt == "" {
		excerpt = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, excerpt)
}
