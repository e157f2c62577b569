// Package nasapower fetches daily agro-climate observations from the NASA
// POWER temporal API and serves rolling-window averages with a short-lived
// cache so repeated day advances do not hammer the upstream service.
package nasapower

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"terrafarm/internal/domain/climate"
	"terrafarm/internal/domain/farm"
)

const DefaultBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

// POWER reports missing samples as -999.
const fillValue = -999.0

const (
	paramTempAvg       = "T2M"
	paramTempMax       = "T2M_MAX"
	paramTempMin       = "T2M_MIN"
	paramPrecipitation = "PRECTOTCORR"
	paramHumidity      = "RH2M"
	paramWindSpeed     = "WS2M"
	paramSolar         = "ALLSKY_SFC_SW_DWN"
)

var requestedParams = []string{
	paramTempAvg, paramTempMax, paramTempMin,
	paramPrecipitation, paramHumidity, paramWindSpeed, paramSolar,
}

type Client struct {
	BaseURL    string
	HTTP       *http.Client
	WindowDays int
	CacheTTL   time.Duration
	Now        func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	history   climate.History
	averaged  climate.Observation
	fetchedAt time.Time
}

func New() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		WindowDays: 30,
		CacheTTL:   30 * time.Minute,
		Now:        time.Now,
		cache:      map[string]cacheEntry{},
	}
}

// Observe returns the rolling-window average observation for loc.
func (c *Client) Observe(ctx context.Context, loc farm.Location) (climate.Observation, error) {
	entry, err := c.window(ctx, loc)
	if err != nil {
		return climate.Observation{}, err
	}
	return entry.averaged, nil
}

// History returns the trailing daily records for loc, oldest first.
func (c *Client) History(ctx context.Context, loc farm.Location) (climate.History, error) {
	entry, err := c.window(ctx, loc)
	if err != nil {
		return climate.History{}, err
	}
	return entry.history, nil
}

func (c *Client) window(ctx context.Context, loc farm.Location) (cacheEntry, error) {
	key := fmt.Sprintf("%.2f,%.2f", loc.Latitude, loc.Longitude)
	now := c.Now()

	c.mu.Lock()
	if entry, ok := c.cache[key]; ok && now.Sub(entry.fetchedAt) < c.CacheTTL {
		c.mu.Unlock()
		return entry, nil
	}
	c.mu.Unlock()

	entry, err := c.fetch(ctx, loc, now)
	if err != nil {
		return cacheEntry{}, err
	}

	c.mu.Lock()
	if c.cache == nil {
		c.cache = map[string]cacheEntry{}
	}
	c.cache[key] = entry
	c.mu.Unlock()
	return entry, nil
}

type powerResponse struct {
	Properties struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}

func (c *Client) fetch(ctx context.Context, loc farm.Location, now time.Time) (cacheEntry, error) {
	end := now
	start := now.AddDate(0, 0, -c.WindowDays)

	q := url.Values{}
	q.Set("parameters", joinParams())
	q.Set("community", "AG")
	q.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	q.Set("start", start.Format("20060102"))
	q.Set("end", end.Format("20060102"))
	q.Set("format", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("build power request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("fetch power data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return cacheEntry{}, fmt.Errorf("power api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("read power response: %w", err)
	}
	var parsed powerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return cacheEntry{}, fmt.Errorf("decode power response: %w", err)
	}

	history := buildHistory(parsed.Properties.Parameter)
	if len(history.Days) == 0 {
		return cacheEntry{}, fmt.Errorf("power api returned no usable samples")
	}

	return cacheEntry{
		history:   history,
		averaged:  average(parsed.Properties.Parameter, history),
		fetchedAt: now,
	}, nil
}

func buildHistory(params map[string]map[string]float64) climate.History {
	temps := params[paramTempAvg]
	dates := make([]string, 0, len(temps))
	for date, v := range temps {
		if v == fillValue {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]climate.DayRecord, 0, len(dates))
	for _, date := range dates {
		days = append(days, climate.DayRecord{
			TempAvg:       valueAt(params, paramTempAvg, date),
			TempMin:       valueAt(params, paramTempMin, date),
			TempMax:       valueAt(params, paramTempMax, date),
			Precipitation: valueAt(params, paramPrecipitation, date),
			Humidity:      valueAt(params, paramHumidity, date),
		})
	}
	return climate.History{Days: days}
}

func valueAt(params map[string]map[string]float64, name, date string) float64 {
	v, ok := params[name][date]
	if !ok || v == fillValue {
		return 0
	}
	return v
}

func average(params map[string]map[string]float64, history climate.History) climate.Observation {
	obs := climate.Observation{
		SolarRadiation: meanOf(params[paramSolar]),
		WindSpeed:      meanOf(params[paramWindSpeed]),
	}
	n := float64(len(history.Days))
	for _, d := range history.Days {
		obs.TempAvg += d.TempAvg / n
		obs.TempMin += d.TempMin / n
		obs.TempMax += d.TempMax / n
		obs.Precipitation += d.Precipitation / n
		obs.Humidity += d.Humidity / n
	}
	return obs
}

func meanOf(series map[string]float64) float64 {
	var sum float64
	var n int
	for _, v := range series {
		if v == fillValue {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func joinParams() string {
	out := requestedParams[0]
	for _, p := range requestedParams[1:] {
		out += "," + p
	}
	return out
}
