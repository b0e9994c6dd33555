package structs

type Banner struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Kind  string `json:"kind"`
}

// PageState is everything the page shows for one submission cycle.
type PageState struct {
	Vitals      VitalsInput `json:"vitals"`
	DietVisible bool        `json:"diet_visible"`
	DietText    string      `json:"diet_text"`
	Banner      *Banner     `json:"banner,omitempty"`
	Alert       string      `json:"alert,omitempty"`
	SubmitID    string      `json:"submit_id,omitempty"`
}
