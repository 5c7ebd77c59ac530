package req_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/http/req"
)

type credentialsForm struct {
	Username string `schema:"username" validate:"max=64"`
	Password string `schema:"password" validate:"max=72"`
	Next     string `schema:"next" validate:"localpath"`
}

func TestParserParseForm(t *testing.T) {
	tcs := []struct {
		name     string
		body     string
		expected credentialsForm
		err      error
		field    string
	}{
		{
			name:     "Empty",
			body:     "",
			expected: credentialsForm{},
		},
		{
			name:     "Credentials",
			body:     "username=alice&password=hunter2&extra=ignored",
			expected: credentialsForm{Username: "alice", Password: "hunter2"},
		},
		{
			name:     "Local-Next",
			body:     "username=alice&next=%2Fwanttogo",
			expected: credentialsForm{Username: "alice", Next: "/wanttogo"},
		},
		{
			name:  "Offsite-Next",
			body:  "username=alice&next=%2F%2Fevil.com",
			err:   wanderlust.ErrNotValid,
			field: "next",
		},
		{
			name:  "Absolute-Next",
			body:  "next=https%3A%2F%2Fevil.com%2Fhome",
			err:   wanderlust.ErrNotValid,
			field: "next",
		},
		{
			name:  "Password-Too-Long",
			body:  "username=alice&password=" + strings.Repeat("a", 73),
			err:   wanderlust.ErrNotValid,
			field: "password",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tc.body))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			actual := new(credentialsForm)

			// Act
			err := req.NewParser().ParseForm(r, actual)

			// Assert
			require.ErrorIs(t, err, tc.err)
			if tc.err != nil {
				var verrs req.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				require.Equal(t, tc.field, verrs[0].Field)
				return
			}

			require.Equal(t, tc.expected, *actual)
		})
	}
}

func TestParserParseQueryParams(t *testing.T) {
	// Arrange
	parser := req.NewParser()
	u := make(url.Values)

	// Act
	err := parser.ParseQueryParams(u, struct{}{})

	// Assert
	require.ErrorIs(t, err, wanderlust.ErrBadConfig)

	// Act
	err = parser.ParseQueryParams(u, new(struct {
		A string `schema:"a,required"`
	}))

	// Assert
	require.ErrorIs(t, err, wanderlust.ErrBadConfig)

	// Arrange
	type test struct {
		A string   `schema:"a" validate:"required"`
		B int64    `schema:"b" validate:"gt=10,required"`
		C []string `schema:"c" validate:"len=2,required"`
		D string   `schema:"-"`
	}

	u.Set("a", "test")
	u.Set("b", "test")

	var actual req.ValidationErrors
	expected := req.ValidationErrors{{
		Field: "b",
		Got:   "bad value at index 0",
		Rule:  "must be int64",
	}}

	// Act
	err = parser.ParseQueryParams(u, new(test))

	// Assert
	require.ErrorIs(t, err, wanderlust.ErrNotValid)
	require.ErrorAs(t, err, &actual)
	require.Equal(t, expected[0], actual[0])

	// Arrange
	u.Set("b", "1")
	u.Add("c", "1")

	expected = req.ValidationErrors{
		{
			Field: "b",
			Got:   int64(1),
			Rule:  "gt=10; int64",
		},
		{
			Field: "c",
			Got:   []string{"1"},
			Rule:  "len=2; []string",
		},
	}

	// Act
	err = parser.ParseQueryParams(u, new(test))

	// Assert
	require.ErrorIs(t, err, wanderlust.ErrNotValid)
	require.ErrorAs(t, err, &actual)
	require.Len(t, actual, 2)
	require.Equal(t, expected[0], actual[0])
	require.Equal(t, expected[1], actual[1])

	// Arrange
	u.Set("b", "20")
	u.Add("c", "2")
	u.Set("d", "ignore")
	actualVal := new(test)

	// Act
	err = parser.ParseQueryParams(u, actualVal)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "test", actualVal.A)
	require.Equal(t, int64(20), actualVal.B)
	require.Equal(t, []string{"1", "2"}, actualVal.C)
	require.Equal(t, "", actualVal.D)
}
