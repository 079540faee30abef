package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nhle/kids-todo/internal/model"
)

// Storage keys. The daily-reward marker is deliberately an independent key
// rather than a field of the main blob, matching the stored layout; a save
// of the blob and an update of the marker are therefore not atomic with
// each other.
const (
	appDataKey    = "app-data"
	dailyLoginKey = "daily-login"
)

// Gateway loads and saves the whole application state as one JSON blob.
// Read failures are masked by returning defaults and write failures are
// logged and swallowed; callers never see a storage error.
type Gateway struct {
	blob Blob
}

// NewGateway creates a Gateway over the given blob store.
func NewGateway(b Blob) *Gateway {
	return &Gateway{blob: b}
}

// Load reads the stored state. On a missing key or an unparsable blob it
// returns DefaultAppData instead of an error.
func (g *Gateway) Load(ctx context.Context) *model.AppData {
	raw, ok, err := g.blob.Get(ctx, appDataKey)
	if err != nil {
		log.Printf("loading app data: %v", err)
		return model.DefaultAppData()
	}
	if !ok {
		return model.DefaultAppData()
	}

	var data model.AppData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		log.Printf("parsing app data: %v", err)
		return model.DefaultAppData()
	}

	data.Normalize()
	return &data
}

// Save serializes and writes the full state, overwriting the prior blob.
// Failures are logged; the state is simply not durable for that write.
func (g *Gateway) Save(ctx context.Context, data *model.AppData) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("serializing app data: %v", err)
		return
	}
	if err := g.blob.Set(ctx, appDataKey, string(raw)); err != nil {
		log.Printf("saving app data: %v", err)
	}
}

// LastRewardDate returns the date ("2006-01-02") the daily-open reward was
// last granted, or "" if it never was.
func (g *Gateway) LastRewardDate(ctx context.Context) string {
	date, ok, err := g.blob.Get(ctx, dailyLoginKey)
	if err != nil {
		log.Printf("loading daily login marker: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return date
}

// SetLastRewardDate records the date the daily-open reward was granted.
func (g *Gateway) SetLastRewardDate(ctx context.Context, date string) {
	if err := g.blob.Set(ctx, dailyLoginKey, date); err != nil {
		log.Printf("saving daily login marker: %v", err)
	}
}
