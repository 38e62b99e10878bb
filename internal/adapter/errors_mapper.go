package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a relay response into nil for 2xx, [ErrMailRejected]
// for 4xx and [ErrMailTransportUnavailable] for everything else.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d: %s", ErrMailTransportUnavailable, resp.StatusCode(), body)
	case resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrMailRejected, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrMailTransportUnavailable, resp.StatusCode(), body)
	}
}
