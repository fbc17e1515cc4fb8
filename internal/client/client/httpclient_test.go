package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/store"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiles struct{}

func (stubProfiles) Me(_ context.Context, tok string) (*identity.Profile, error) {
	if tok != "fb-token" {
		return nil, &identity.GraphError{Message: "bad token"}
	}
	return &identity.Profile{ID: "fb123", Name: "Jane"}, nil
}

func newInProcess(t *testing.T) *HTTPClient {
	t.Helper()
	st, err := store.Open(context.Background(), slot.NewMemorySlot(nil))
	require.NoError(t, err)
	rt := fakebackend.NewInterceptor(fakebackend.New(st, stubProfiles{}, nil), nil, 0, nil)
	return NewHTTPClient("http://api.local", &http.Client{Transport: rt})
}

func TestHTTPClient_FullFlow(t *testing.T) {
	ctx := context.Background()
	c := newInProcess(t)

	_, err := c.GetAll(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	acc, err := c.Authenticate(ctx, "fb-token")
	require.NoError(t, err)
	require.NotEmpty(t, acc.Token)
	c.SetToken(acc.Token)

	list, err := c.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Token)

	got, err := c.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)

	name := "Janet"
	upd, err := c.Update(ctx, acc.ID, models.AccountParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Janet", upd.Name)

	require.NoError(t, c.Delete(ctx, acc.ID))
	got, err = c.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHTTPClient_NotFoundIsNil(t *testing.T) {
	c := newInProcess(t)
	c.SetToken("fake-jwt-token.x")

	got, err := c.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	name := "x"
	upd, err := c.Update(context.Background(), 42, models.AccountParams{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, upd)
}

func TestHTTPClient_AuthenticateRejected(t *testing.T) {
	c := newInProcess(t)

	_, err := c.Authenticate(context.Background(), "nope")
	require.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad token", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestHTTPClient_SendsBearer(t *testing.T) {
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_ = json.NewEncoder(w).Encode(models.Account{ID: 3})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", srv.Client())
	_, err := c.Update(context.Background(), 3, models.AccountParams{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "{}", gotBody)

	c.SetToken("fake-jwt-token.abc")
	_, err = c.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Bearer fake-jwt-token.abc", gotAuth)
}

func TestHTTPClient_ServerErrorNotUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL, srv.Client()).Delete(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Internal Server Error", apiErr.Error())
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, nil).GetAll(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	st, err := store.Open(context.Background(), slot.NewMemorySlot(nil))
	require.NoError(t, err)
	rt := fakebackend.NewInterceptor(fakebackend.New(st, stubProfiles{}, nil), nil, time.Hour, nil)
	c := NewHTTPClient("http://api.local", &http.Client{Transport: rt})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Authenticate(ctx, "fb-token")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
