package logger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	lc = logger.LogContext{User: wanderlust.User{ID: 1, Username: "alice"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"user":{"id":1,"username":"alice"}}`, string(b))
}

func TestLogContextMarshalTextRequest(t *testing.T) {
	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodPost,
			"url":    "https://example.com/login?next=%2Fhome",
			"header": map[string]any{
				"Content-Type": []any{"application/x-www-form-urlencoded"},
			},
			"form": map[string]any{
				"username": []any{"alice"},
				"password": []any{wanderlust.LogMaskVal},
			},
		},
	}

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "hunter2")

	r := httptest.NewRequest(http.MethodPost, "https://example.com/login?next=%2Fhome", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Cookie", "wanderlust=secret")
	require.Nil(t, r.ParseForm())

	lc := logger.LogContext{Request: r}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "hunter2", r.PostForm.Get("password"))
}
