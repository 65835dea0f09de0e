package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/internal/transport"
	"github.com/sellerstack/crosslist/pkg/errors"
)

func TestGetAppliesAuthAndHeaders(t *testing.T) {
	var gotAccept, gotUser string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUser, _, _ = r.BasicAuth()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := transport.New(&transport.BasicAuth{Key: "user", Secret: "pass"})
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	_, err = transport.ReadBody(resp)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "user", gotUser)
}

func TestPostMarshalsBody(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := transport.New(nil)
	resp, err := client.Post(context.Background(), server.URL, map[string]string{"name": "Blue Mug"})
	require.NoError(t, err)
	_, err = transport.ReadBody(resp)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"name":"Blue Mug"}`, gotBody)
}

func TestReadBodyStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, errors.IsRateLimited},
		{http.StatusInternalServerError, errors.IsStorefrontUnavailable},
		{http.StatusBadGateway, errors.IsStorefrontUnavailable},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		client := transport.New(nil)
		resp, err := client.Get(context.Background(), server.URL)
		require.NoError(t, err)

		_, err = transport.ReadBody(resp)
		require.Error(t, err, "status %d", tt.status)
		assert.True(t, tt.check(err), "status %d", tt.status)

		server.Close()
	}
}

func TestDecodeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Blue Mug"}`))
	}))
	defer server.Close()

	client := transport.New(nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	var decoded struct {
		Name string `json:"name"`
	}
	require.NoError(t, transport.DecodeResponse(resp, &decoded))
	assert.Equal(t, "Blue Mug", decoded.Name)
}
