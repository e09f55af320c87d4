package transit

import (
	"context"
	"net/http"
	"net/url"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/gnowak/dashboard/config"
	"github.com/gnowak/dashboard/upstream"
)

// feedLabel prefixes upstream failure messages for this feed.
const feedLabel = "TTC alerts"

// Service fetches and normalizes the GTFS-RT service-alerts feed. It holds
// no mutable state; concurrent calls are independent.
type Service struct {
	cfg    config.TransitConfig
	client *http.Client
}

// NewService creates a transit alerts service. A nil client gets a default
// one bounded by the configured timeout.
func NewService(cfg config.TransitConfig, client *http.Client) *Service {
	if client == nil {
		client = upstream.NewClient(cfg.TimeoutMS)
	}
	return &Service{cfg: cfg, client: client}
}

// Source reports the upstream host name echoed in responses.
func (s *Service) Source() string {
	u, err := url.Parse(s.cfg.AlertsURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Alerts fetches the feed and maps every entity carrying an alert payload.
func (s *Service) Alerts(ctx context.Context) ([]Alert, error) {
	body, err := upstream.Fetch(ctx, s.client, feedLabel, s.cfg.AlertsURL, s.cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(body, &fm); err != nil {
		return nil, &upstream.DecodeError{Err: err}
	}

	alerts := make([]Alert, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		if e.Alert == nil {
			continue
		}
		alerts = append(alerts, mapAlert(e.GetId(), e.Alert))
	}
	return alerts, nil
}

func mapAlert(id string, a *gtfsrtpb.Alert) Alert {
	out := Alert{
		ID:            id,
		Header:        firstTranslation(a.HeaderText),
		Description:   firstTranslation(a.DescriptionText),
		URL:           firstTranslation(a.Url),
		ActivePeriods: make([]ActivePeriod, 0, len(a.ActivePeriod)),
		Informed:      make([]InformedEntity, 0, len(a.InformedEntity)),
	}
	if a.Cause != nil {
		out.Cause = ptr(a.Cause.String())
	}
	if a.Effect != nil {
		out.Effect = ptr(a.Effect.String())
	}
	if a.SeverityLevel != nil {
		out.Severity = ptr(a.SeverityLevel.String())
	}
	for _, p := range a.ActivePeriod {
		out.ActivePeriods = append(out.ActivePeriods, ActivePeriod{
			Start: iso8601FromUnixPtr(p.Start),
			End:   iso8601FromUnixPtr(p.End),
		})
	}
	for _, ie := range a.InformedEntity {
		informed := InformedEntity{
			RouteID: ie.RouteId,
			StopID:  ie.StopId,
		}
		if ie.Trip != nil {
			informed.TripID = ie.Trip.TripId
		}
		out.Informed = append(out.Informed, informed)
	}
	return out
}

// firstTranslation picks the first entry of a translations list; there is
// no locale negotiation.
func firstTranslation(ts *gtfsrtpb.TranslatedString) *string {
	if ts == nil || len(ts.Translation) == 0 {
		return nil
	}
	text := ts.Translation[0].GetText()
	if text == "" {
		return nil
	}
	return &text
}

// iso8601FromUnixPtr converts provider epoch seconds to RFC3339 UTC. Zero
// and absent values mean an open interval bound.
func iso8601FromUnixPtr(sec *uint64) *string {
	if sec == nil || *sec == 0 {
		return nil
	}
	s := time.Unix(int64(*sec), 0).UTC().Format(time.RFC3339)
	return &s
}

func ptr(s string) *string { return &s }
