package transit

// Alert is one normalized service alert. Optional fields marshal as explicit
// JSON nulls so the response shape is stable regardless of what the provider
// populated.
type Alert struct {
	ID            string           `json:"id"`
	Header        *string          `json:"header"`
	Description   *string          `json:"description"`
	URL           *string          `json:"url"`
	Cause         *string          `json:"cause"`
	Effect        *string          `json:"effect"`
	Severity      *string          `json:"severity"`
	ActivePeriods []ActivePeriod   `json:"activePeriods"`
	Informed      []InformedEntity `json:"informed"`
}

// ActivePeriod is a validity window; either bound may be open.
type ActivePeriod struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// InformedEntity identifies which transit entities an alert concerns. Each
// field is independently optional.
type InformedEntity struct {
	RouteID *string `json:"routeId"`
	StopID  *string `json:"stopId"`
	TripID  *string `json:"tripId"`
}
