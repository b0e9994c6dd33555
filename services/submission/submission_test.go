package submission

import (
	"context"
	"heartcare-web/enums"
	"heartcare-web/services/prediction"
	"heartcare-web/structs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPredictor struct {
	res   structs.PredictionResponse
	err   error
	panic bool
	calls int
}

func (s *stubPredictor) Predict(ctx context.Context, vitals structs.VitalsInput) (structs.PredictionResponse, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	return s.res, s.err
}

func TestSubmitPositive(t *testing.T) {
	stub := &stubPredictor{res: structs.PredictionResponse{Result: "Heart Disease"}}
	state := NewSubmissionService(stub).Submit(context.Background(), structs.PageState{}, structs.VitalsInput{Age: "25", Chol: "240", Trestbps: "130"})

	assert.Equal(t, 1, stub.calls)
	assert.True(t, state.DietVisible)
	assert.Equal(t, "Recommended Diet: Balanced diet with cardio exercise.", state.DietText)
	assert.Equal(t, enums.ColorWarm, state.Banner.Color)
	assert.NotEmpty(t, state.SubmitID)
}

func TestSubmitRecoversPredictorPanic(t *testing.T) {
	stub := &stubPredictor{panic: true}
	var state structs.PageState
	assert.NotPanics(t, func() {
		state = NewSubmissionService(stub).Submit(context.Background(), structs.PageState{}, structs.VitalsInput{Age: "25"})
	})
	assert.False(t, state.DietVisible)
	assert.Equal(t, enums.ColorAmber, state.Banner.Color)
	assert.Equal(t, enums.TransportAlert, state.Alert)
}

func TestSubmitNonSuccessStatusAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewSubmissionService(prediction.NewHTTPPredictor(prediction.Options{URL: srv.URL}))
	state := svc.Submit(context.Background(), structs.PageState{}, structs.VitalsInput{Age: "25"})

	assert.False(t, state.DietVisible)
	assert.Equal(t, "Error: Network response was not OK", state.Banner.Text)
	assert.Equal(t, enums.ColorAmber, state.Banner.Color)
}

func TestSubmitNumericRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":5}`))
	}))
	defer srv.Close()

	svc := NewSubmissionService(prediction.NewHTTPPredictor(prediction.Options{URL: srv.URL}))
	state := svc.Submit(context.Background(), structs.PageState{}, structs.VitalsInput{Age: "25"})

	assert.False(t, state.DietVisible)
	assert.Equal(t, "Error: 5", state.Alert)
	assert.Equal(t, "Prediction failed: 5", state.Banner.Text)
	assert.Equal(t, enums.ColorAmber, state.Banner.Color)
}
