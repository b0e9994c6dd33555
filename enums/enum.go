package enums

type Classification string

const (
	Positive Classification = "positive"
	Negative Classification = "negative"
)

// banner 種類
const (
	BannerPositive = "positive"
	BannerNegative = "negative"
	BannerError    = "error"
)

// banner 顏色
const (
	ColorWarm  = "#FF7F7F"
	ColorCalm  = "#3CB4AC"
	ColorAmber = "#FFB347"
)

// submission 結果，metrics label 用
const (
	OutcomePositive       = "positive"
	OutcomeNegative       = "negative"
	OutcomeRemoteError    = "remote_error"
	OutcomeTransportError = "transport_error"
)

const (
	TransportAlert = "An error occurred. Please try again."
	DietPrefix     = "Recommended Diet: "
	ResultPrefix   = "Prediction Result: "
	FailedPrefix   = "Prediction failed: "
	ErrorPrefix    = "Error: "
)
