package transit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/gnowak/dashboard/config"
	"github.com/gnowak/dashboard/upstream"
)

func translated(texts ...string) *gtfsrtpb.TranslatedString {
	ts := &gtfsrtpb.TranslatedString{}
	for _, text := range texts {
		ts.Translation = append(ts.Translation, &gtfsrtpb.TranslatedString_Translation{
			Text: proto.String(text),
		})
	}
	return ts
}

func serveFeed(t *testing.T, fm *gtfsrtpb.FeedMessage) *httptest.Server {
	t.Helper()
	body, err := proto.Marshal(fm)
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestService(url string, client *http.Client) *Service {
	return NewService(config.TransitConfig{
		AlertsURL: url,
		UserAgent: "dashboard-feeds-test/1.0",
	}, client)
}

func TestAlertsDropsEntitiesWithoutAlertPayload(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("alert-1"),
				Alert: &gtfsrtpb.Alert{
					HeaderText: translated("Line closure"),
					ActivePeriod: []*gtfsrtpb.TimeRange{
						{Start: proto.Uint64(1700000000)},
					},
				},
			},
			{Id: proto.String("vehicle-1")},
		},
	}
	srv := serveFeed(t, fm)

	svc := newTestService(srv.URL, srv.Client())
	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)

	require.Len(t, alerts, 1)
	a := alerts[0]
	assert.Equal(t, "alert-1", a.ID)
	require.NotNil(t, a.Header)
	assert.Equal(t, "Line closure", *a.Header)
	assert.Nil(t, a.URL)
	require.Len(t, a.ActivePeriods, 1)
	require.NotNil(t, a.ActivePeriods[0].Start)
	assert.Equal(t, "2023-11-14T22:13:20Z", *a.ActivePeriods[0].Start)
	assert.Nil(t, a.ActivePeriods[0].End)
}

func TestAlertsFirstTranslationWins(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("alert-1"),
				Alert: &gtfsrtpb.Alert{
					HeaderText:      translated("First header", "Second header"),
					DescriptionText: translated("First description", "Second description"),
					Url:             translated("https://example.com/first", "https://example.com/second"),
				},
			},
		},
	}
	srv := serveFeed(t, fm)

	svc := newTestService(srv.URL, srv.Client())
	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)

	require.Len(t, alerts, 1)
	a := alerts[0]
	require.NotNil(t, a.Header)
	assert.Equal(t, "First header", *a.Header)
	require.NotNil(t, a.Description)
	assert.Equal(t, "First description", *a.Description)
	require.NotNil(t, a.URL)
	assert.Equal(t, "https://example.com/first", *a.URL)
}

func TestAlertsPassesThroughCategoricalCodes(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("alert-1"),
				Alert: &gtfsrtpb.Alert{
					Cause:         gtfsrtpb.Alert_CONSTRUCTION.Enum(),
					Effect:        gtfsrtpb.Alert_DETOUR.Enum(),
					SeverityLevel: gtfsrtpb.Alert_WARNING.Enum(),
				},
			},
			{
				Id:    proto.String("alert-2"),
				Alert: &gtfsrtpb.Alert{},
			},
		},
	}
	srv := serveFeed(t, fm)

	svc := newTestService(srv.URL, srv.Client())
	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	withCodes := alerts[0]
	require.NotNil(t, withCodes.Cause)
	assert.Equal(t, "CONSTRUCTION", *withCodes.Cause)
	require.NotNil(t, withCodes.Effect)
	assert.Equal(t, "DETOUR", *withCodes.Effect)
	require.NotNil(t, withCodes.Severity)
	assert.Equal(t, "WARNING", *withCodes.Severity)

	bare := alerts[1]
	assert.Nil(t, bare.Cause)
	assert.Nil(t, bare.Effect)
	assert.Nil(t, bare.Severity)
}

func TestAlertsMapsInformedEntities(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("alert-1"),
				Alert: &gtfsrtpb.Alert{
					InformedEntity: []*gtfsrtpb.EntitySelector{
						{RouteId: proto.String("504")},
						{StopId: proto.String("14212")},
						{Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String("trip-9")}},
					},
				},
			},
		},
	}
	srv := serveFeed(t, fm)

	svc := newTestService(srv.URL, srv.Client())
	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	informed := alerts[0].Informed
	require.Len(t, informed, 3)
	require.NotNil(t, informed[0].RouteID)
	assert.Equal(t, "504", *informed[0].RouteID)
	assert.Nil(t, informed[0].StopID)
	assert.Nil(t, informed[0].TripID)
	require.NotNil(t, informed[1].StopID)
	assert.Equal(t, "14212", *informed[1].StopID)
	require.NotNil(t, informed[2].TripID)
	assert.Equal(t, "trip-9", *informed[2].TripID)
}

func TestAlertsUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	svc := newTestService(srv.URL, srv.Client())
	_, err := svc.Alerts(context.Background())

	var fetchErr *upstream.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, "TTC alerts fetch failed: 404 Not Found", err.Error())
}

func TestAlertsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not a protobuf</html>"))
	}))
	t.Cleanup(srv.Close)

	svc := newTestService(srv.URL, srv.Client())
	_, err := svc.Alerts(context.Background())

	var decodeErr *upstream.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestAlertJSONShapeHasExplicitNulls(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("alert-1"),
				Alert: &gtfsrtpb.Alert{
					ActivePeriod: []*gtfsrtpb.TimeRange{
						{Start: proto.Uint64(1700000000)},
					},
				},
			},
		},
	}
	srv := serveFeed(t, fm)

	svc := newTestService(srv.URL, srv.Client())
	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	buf, err := json.Marshal(alerts[0])
	require.NoError(t, err)
	body := string(buf)
	assert.Contains(t, body, `"header":null`)
	assert.Contains(t, body, `"description":null`)
	assert.Contains(t, body, `"url":null`)
	assert.Contains(t, body, `"cause":null`)
	assert.Contains(t, body, `"effect":null`)
	assert.Contains(t, body, `"severity":null`)
	assert.Contains(t, body, `"end":null`)
	assert.Contains(t, body, `"informed":[]`)
}

func TestSourceReportsUpstreamHost(t *testing.T) {
	svc := NewService(config.TransitConfig{
		AlertsURL: "https://bustime.ttc.ca/gtfsrt/alerts",
	}, http.DefaultClient)
	assert.Equal(t, "bustime.ttc.ca", svc.Source())
}
