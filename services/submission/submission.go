package submission

import (
	"context"
	"fmt"
	"heartcare-web/services/metrics"
	"heartcare-web/services/prediction"
	"heartcare-web/services/trackLog"
	"heartcare-web/structs"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SubmissionService struct {
	predictor prediction.Predictor
}

func NewSubmissionService(predictor prediction.Predictor) *SubmissionService {
	return &SubmissionService{predictor: predictor}
}

// Submit runs one submit -> predict -> settle cycle starting from state.
// Every failure ends up in the returned state.
func (s *SubmissionService) Submit(ctx context.Context, state structs.PageState, vitals structs.VitalsInput) structs.PageState {
	id := uuid.NewString()
	state = Reduce(state, Submitted{ID: id, Vitals: vitals})

	outcome := s.call(ctx, vitals)
	label := OutcomeLabel(outcome)
	metrics.ObserveSubmission(label)

	entry := trackLog.WithFields(logrus.Fields{"submit_id": id, "outcome": label})
	if outcome.Err != nil {
		entry.Error(fmt.Sprintf("[submission] predictor request failed: %s", outcome.Err))
	} else if outcome.Response.Error != "" {
		entry.Warn(fmt.Sprintf("[submission] predictor error: %s", outcome.Response.Error))
	} else {
		entry.Info(fmt.Sprintf("[submission] result: %s", outcome.Response.Result))
	}

	return Reduce(state, Settled{Outcome: outcome})
}

func (s *SubmissionService) call(ctx context.Context, vitals structs.VitalsInput) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Err: fmt.Errorf("predictor panic: %v", r)}
		}
	}()
	res, err := s.predictor.Predict(ctx, vitals)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Response: res}
}
