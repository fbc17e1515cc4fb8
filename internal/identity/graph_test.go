package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("access_token") {
		case "good":
			_, _ = w.Write([]byte(`{"id":"fb123","name":"Jane Doe"}`))
		case "garbage":
			_, _ = w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`))
		}
	})
	mux.HandleFunc("/me/permissions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"token":"` + r.URL.Query().Get("access_token") + `"}`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestProfileClient_Me(t *testing.T) {
	srv := graphStub(t)
	c := NewProfileClient(srv.URL+"/", srv.Client())

	p, err := c.Me(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, &Profile{ID: "fb123", Name: "Jane Doe"}, p)
}

func TestProfileClient_GraphError(t *testing.T) {
	srv := graphStub(t)
	c := NewProfileClient(srv.URL, srv.Client())

	_, err := c.Me(context.Background(), "expired")
	var ge *GraphError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Invalid OAuth access token.", ge.Message)
	assert.Equal(t, 190, ge.Code)
}

func TestProfileClient_DecodeError(t *testing.T) {
	srv := graphStub(t)
	c := NewProfileClient(srv.URL, srv.Client())

	_, err := c.Me(context.Background(), "garbage")
	require.ErrorContains(t, err, "graph decode error")
}

func TestProfileClient_TransportError(t *testing.T) {
	srv := graphStub(t)
	url := srv.URL
	srv.Close()

	_, err := NewProfileClient(url, nil).Me(context.Background(), "good")
	require.ErrorContains(t, err, "graph call error")

	var ge *GraphError
	assert.NotErrorAs(t, err, &ge)
}

func TestGraphClient_StatusWithoutEnvelope(t *testing.T) {
	srv := graphStub(t)
	g := newGraphClient(srv.URL, srv.Client())

	_, err := g.call(context.Background(), "broken", http.MethodGet, nil)
	var ge *GraphError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusBadGateway, ge.Code)
}

func TestNewGraphClient_Defaults(t *testing.T) {
	g := newGraphClient("", nil)
	assert.Equal(t, DefaultGraphURL, g.baseURL)
	assert.NotNil(t, g.http)
}
