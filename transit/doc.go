// Package transit normalizes the TTC GTFS-RT service-alerts feed.
//
// The feed is a binary protobuf FeedMessage; each entity carrying an alert
// payload is mapped to an Alert record with a stable JSON shape. Entities
// without an alert payload are dropped.
package transit
