package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFxRateIdentityNoNetworkCall(t *testing.T) {
	called := false
	svc := FxService{
		BaseURL: "http://rates.invalid",
		Client: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			called = true
			return nil, io.ErrUnexpectedEOF
		})},
		Log: quietLogger(),
	}

	for _, code := range []string{"SAR", "USD", "EUR", ""} {
		assert.Equal(t, 1.0, svc.Rate(code, code))
	}
	// empty codes default to the reference currency on both sides
	assert.Equal(t, 1.0, svc.Rate("", "SAR"))
	assert.False(t, called, "identity rate must not hit the network")
}

func TestFxRateLiveLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		assert.Equal(t, "SAR", r.URL.Query().Get("from"))
		assert.Equal(t, "AED", r.URL.Query().Get("to"))
		_, _ = w.Write([]byte(`{"result": 0.9793}`))
	}))
	defer srv.Close()

	svc := NewFxService(srv.URL, quietLogger())
	assert.Equal(t, 0.9793, svc.Rate("SAR", "AED"))
}

func TestFxRateFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewFxService(srv.URL, quietLogger())
	assert.Equal(t, 0.2667, svc.Rate("SAR", "USD"))
	assert.Equal(t, 3.75, svc.Rate("USD", "SAR"))
}

func TestFxRateFallbackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	svc := NewFxService(srv.URL, quietLogger())
	assert.Equal(t, 0.2667, svc.Rate("sar", "usd"))
}

func TestFxRateFallbackOnMissingResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	svc := NewFxService(srv.URL, quietLogger())
	assert.Equal(t, 3.75, svc.Rate("USD", "SAR"))
}

func TestFxRateUnknownPairIsIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// known approximation: a pair outside the fallback table keeps amounts
	// unchanged rather than converted
	svc := NewFxService(srv.URL, quietLogger())
	assert.Equal(t, 1.0, svc.Rate("EUR", "JPY"))
}

func TestFxRateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"result": 2.0}`))
	}))
	defer srv.Close()

	svc := FxService{
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 10 * time.Millisecond},
		Log:     quietLogger(),
	}
	assert.Equal(t, 0.2667, svc.Rate("SAR", "USD"))
}
