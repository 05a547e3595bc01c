package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Message:    errorMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.Err = ErrForbidden
	case http.StatusNotFound:
		respErr.Err = ErrNotFound
	case http.StatusConflict:
		respErr.Err = ErrConflict
	case http.StatusBadGateway:
		respErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.Err = ErrInternalServerError
	default:
		respErr.Err = ErrUnexpectedStatus
		if respErr.Body == "" {
			respErr.Body = http.StatusText(resp.StatusCode())
		}
	}

	return respErr
}

// errorMessage extracts {"message": "..."} from body, or "" if the body is
// not such an object.
func errorMessage(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}
	return strings.TrimSpace(er.Message)
}
