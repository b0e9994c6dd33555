package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"heartcare-web/structs"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPredictorServer(t *testing.T, status int, body string, seen *structs.VitalsInput) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if seen != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, seen))
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
}

func TestPredictSendsRawStrings(t *testing.T) {
	var seen structs.VitalsInput
	srv := newPredictorServer(t, http.StatusOK, `{"result":"No Heart Disease"}`, &seen)
	defer srv.Close()

	p := NewHTTPPredictor(Options{URL: srv.URL})
	vitals := structs.VitalsInput{Age: "25", Chol: "two hundred", Trestbps: "120.5"}
	res, err := p.Predict(context.Background(), vitals)

	require.NoError(t, err)
	assert.Equal(t, "No Heart Disease", res.Result)
	assert.Equal(t, vitals, seen)
}

func TestPredictRemoteError(t *testing.T) {
	srv := newPredictorServer(t, http.StatusOK, `{"error":"model unavailable"}`, nil)
	defer srv.Close()

	res, err := NewHTTPPredictor(Options{URL: srv.URL}).Predict(context.Background(), structs.VitalsInput{})

	require.NoError(t, err)
	assert.Equal(t, "model unavailable", res.Error)
	assert.Empty(t, res.Result)
}

func TestPredictEmptyErrorFallsThroughToResult(t *testing.T) {
	srv := newPredictorServer(t, http.StatusOK, `{"error":"","result":"yes"}`, nil)
	defer srv.Close()

	res, err := NewHTTPPredictor(Options{URL: srv.URL}).Predict(context.Background(), structs.VitalsInput{})

	require.NoError(t, err)
	assert.Equal(t, "yes", res.Result)
}

func TestPredictNonSuccessStatusIgnoresBody(t *testing.T) {
	srv := newPredictorServer(t, http.StatusInternalServerError, `{"result":"Heart Disease"}`, nil)
	defer srv.Close()

	_, err := NewHTTPPredictor(Options{URL: srv.URL}).Predict(context.Background(), structs.VitalsInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "Network response was not OK", err.Error())
}

func TestPredictMalformedBody(t *testing.T) {
	for _, body := range []string{`not json`, `{}`, `{"result":42}`} {
		srv := newPredictorServer(t, http.StatusOK, body, nil)
		_, err := NewHTTPPredictor(Options{URL: srv.URL}).Predict(context.Background(), structs.VitalsInput{})
		assert.Error(t, err, body)
		srv.Close()
	}
}

func TestPredictNetworkFailure(t *testing.T) {
	srv := newPredictorServer(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	_, err := NewHTTPPredictor(Options{URL: url}).Predict(context.Background(), structs.VitalsInput{})
	assert.Error(t, err)
}

func TestPredictTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	p := NewHTTPPredictor(Options{URL: srv.URL, Timeout: 50 * time.Millisecond})
	start := time.Now()
	_, err := p.Predict(context.Background(), structs.VitalsInput{})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), time.Second)
}

func TestPredictNonStringError(t *testing.T) {
	cases := map[string]string{
		`{"error":5}`:                  "5",
		`{"error":true}`:               "true",
		`{"error":{"code":1}}`:         `{"code":1}`,
		`{"error":0,"result":"yes"}`:   "",
		`{"error":null,"result":"no"}`: "",
	}
	for body, want := range cases {
		srv := newPredictorServer(t, http.StatusOK, body, nil)
		res, err := NewHTTPPredictor(Options{URL: srv.URL}).Predict(context.Background(), structs.VitalsInput{})
		srv.Close()

		require.NoError(t, err, body)
		assert.Equal(t, want, res.Error, body)
		if want == "" {
			assert.NotEmpty(t, res.Result, body)
		}
	}
}

func TestPredictSingleAttemptAndBreakerOpens(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewHTTPPredictor(Options{
		URL:                srv.URL,
		BreakerEnable:      true,
		BreakerMaxFailures: 2,
		BreakerOpenTimeout: time.Minute,
	})

	_, err := p.Predict(context.Background(), structs.VitalsInput{})
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	_, err = p.Predict(context.Background(), structs.VitalsInput{})
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))

	_, err = p.Predict(context.Background(), structs.VitalsInput{})
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}
