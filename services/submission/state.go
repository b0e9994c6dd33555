package submission

import (
	"heartcare-web/enums"
	"heartcare-web/services/diet"
	"heartcare-web/services/prediction"
	"heartcare-web/structs"
)

// Outcome is a settled predictor call: either Err or Response is meaningful.
type Outcome struct {
	Response structs.PredictionResponse
	Err      error
}

type Event interface {
	isEvent()
}

// Submitted 表單送出，還沒有回應
type Submitted struct {
	ID     string
	Vitals structs.VitalsInput
}

// Settled predictor 已回應或失敗
type Settled struct {
	Outcome Outcome
}

func (Submitted) isEvent() {}
func (Settled) isEvent()   {}

// Reduce returns the page state after event. state is not modified.
func Reduce(state structs.PageState, event Event) structs.PageState {
	switch e := event.(type) {
	case Submitted:
		state.SubmitID = e.ID
		state.Vitals = e.Vitals
		state.DietVisible = false
		state.DietText = ""
		state.Alert = ""
		return state
	case Settled:
		return settle(state, e.Outcome)
	}
	return state
}

func settle(state structs.PageState, outcome Outcome) structs.PageState {
	state.DietVisible = false
	state.DietText = ""
	state.Alert = ""

	if outcome.Err != nil {
		state.Alert = enums.TransportAlert
		state.Banner = &structs.Banner{
			Text:  enums.ErrorPrefix + outcome.Err.Error(),
			Color: enums.ColorAmber,
			Kind:  enums.BannerError,
		}
		return state
	}

	if outcome.Response.Error != "" {
		state.Alert = enums.ErrorPrefix + outcome.Response.Error
		state.Banner = &structs.Banner{
			Text:  enums.FailedPrefix + outcome.Response.Error,
			Color: enums.ColorAmber,
			Kind:  enums.BannerError,
		}
		return state
	}

	banner := &structs.Banner{Text: enums.ResultPrefix + outcome.Response.Result}
	if prediction.Classify(outcome.Response.Result) == enums.Positive {
		state.DietVisible = true
		state.DietText = enums.DietPrefix + diet.Recommend(diet.ParseAge(state.Vitals.Age))
		banner.Color = enums.ColorWarm
		banner.Kind = enums.BannerPositive
	} else {
		banner.Color = enums.ColorCalm
		banner.Kind = enums.BannerNegative
	}
	state.Banner = banner
	return state
}

// OutcomeLabel 給 metrics / log 用
func OutcomeLabel(outcome Outcome) string {
	switch {
	case outcome.Err != nil:
		return enums.OutcomeTransportError
	case outcome.Response.Error != "":
		return enums.OutcomeRemoteError
	case prediction.Classify(outcome.Response.Result) == enums.Positive:
		return enums.OutcomePositive
	}
	return enums.OutcomeNegative
}
