package resp

import (
	"bytes"
	"log"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust/http/template/templatetest"
	"github.com/xy-planning-network/wanderlust/logger"
)

func TestResponderWithAuthTemplate(t *testing.T) {
	expected := "test.tmpl"
	d := NewResponder(WithAuthTemplate(expected))
	require.Equal(t, expected, d.templates.authed)
}

func TestResponderWithContactErrMsg(t *testing.T) {
	expected := "Something went wrong. Please try again."
	d := NewResponder(WithContactErrMsg(expected))
	require.Equal(t, expected, d.contactErrMsg)
}

func TestResponderWithErrTemplate(t *testing.T) {
	expected := "test.tmpl"
	d := NewResponder(WithErrTemplate(expected))
	require.Equal(t, expected, d.templates.err)
}

func TestResponderWithLogger(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(log.New(b, "", 0)))

	// Act
	d := NewResponder(WithLogger(l))
	d.logger.Info("hello", nil)

	// Assert
	require.Contains(t, b.String(), "hello")
}

func TestResponderWithParser(t *testing.T) {
	// Arrange
	p := templatetest.NewParser(templatetest.NewMockFile("test.tmpl", []byte(`{{ rootURL }}`)))

	// Act
	d := NewResponder(WithParser(p), WithRootUrl("https://example.com"))

	// Assert
	require.NotNil(t, d.parser)

	tmpl, err := d.parser.Parse("test.tmpl")
	require.Nil(t, err)

	b := new(bytes.Buffer)
	require.Nil(t, tmpl.Execute(b, nil))
	require.Equal(t, "https://example.com", b.String())
}

func TestResponderWithRootUrl(t *testing.T) {
	good, err := url.ParseRequestURI("https://example.com")
	require.Nil(t, err)
	fallback, err := url.ParseRequestURI("http://localhost:3000")
	require.Nil(t, err)

	tcs := []struct {
		name     string
		url      string
		expected *url.URL
	}{
		{"Zero-Value", "", fallback},
		{"Not-Url", "not a url", fallback},
		{"Url", "https://example.com", good},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := NewResponder(WithRootUrl(tc.url))
			require.Equal(t, tc.expected, d.rootUrl)
		})
	}
}

func TestResponderWithUnauthTemplate(t *testing.T) {
	expected := "test.tmpl"
	d := NewResponder(WithUnauthTemplate(expected))
	require.Equal(t, expected, d.templates.unauthed)
}
