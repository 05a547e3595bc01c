package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", errorMessage([]byte(`{"message":" Invalid credentials "}`)))
	assert.Empty(t, errorMessage([]byte(`{"error":"x"}`)))
	assert.Empty(t, errorMessage([]byte(`plain text`)))
	assert.Empty(t, errorMessage(nil))
}

func TestResponseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ResponseError
		want string
	}{
		{
			name: "message preferred",
			err:  &ResponseError{StatusCode: 401, Message: "nope", Body: `{"message":"nope"}`, Err: ErrUnauthorized},
			want: "http 401: unauthorized: nope",
		},
		{
			name: "body fallback",
			err:  &ResponseError{StatusCode: 500, Body: "boom", Err: ErrInternalServerError},
			want: "http 500: internal server error: boom",
		},
		{
			name: "no detail",
			err:  &ResponseError{StatusCode: 403, Err: ErrForbidden},
			want: "http 403: forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.err.Err)
		})
	}
}
