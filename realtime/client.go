// Package realtime reads unvalidated hydrometric readings from the
// Meteorological Service of Canada datamart, which publishes a rolling
// thirty day window of CSV files per station.
package realtime

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public datamart root for hydrometric CSV files.
const DefaultBaseURL = "https://dd.weather.gc.ca/hydrometric"

// Parameter identifies the measured quantity of a reading.
type Parameter string

const (
	Flow  Parameter = "Flow"
	Level Parameter = "Level"
)

// Station is one entry of the datamart station list, a station currently
// publishing realtime data.
type Station struct {
	Number    string
	Name      string
	Latitude  float64
	Longitude float64
	Province  string
	Timezone  string
}

// Reading is a single timestamped observation of one parameter at one
// station. Value is unset when the station reported no measurement.
type Reading struct {
	Number    string
	Province  string
	Timestamp time.Time
	Parameter Parameter
	Value     sql.NullFloat64
	Grade     string
	Symbol    string
	Code      string
}

// provinceCodes are the two-letter codes the datamart organizes its
// directory tree by.
var provinceCodes = map[string]bool{
	"AB": true, "BC": true, "MB": true, "NB": true, "NL": true,
	"NS": true, "NT": true, "NU": true, "ON": true, "PE": true,
	"QC": true, "SK": true, "YT": true,
}

// Client fetches station lists and readings from the datamart.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different datamart root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a datamart client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stations fetches the list of every station currently publishing
// realtime data, in datamart order.
func (c *Client) Stations(ctx context.Context) ([]Station, error) {
	body, err := c.get(ctx, c.baseURL+"/doc/hydrometric_StationList.csv")
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	stations, err := parseStationList(body)
	if err != nil {
		return nil, fmt.Errorf("parsing station list: %w", err)
	}
	return stations, nil
}

// DailyData fetches the rolling window of readings for one station,
// pivoted to one row per timestamp and parameter. province is the
// two-letter code of the province or territory the station reports
// under.
func (c *Client) DailyData(ctx context.Context, province, number string) ([]Reading, error) {
	prov := strings.ToUpper(province)
	if !provinceCodes[prov] {
		return nil, fmt.Errorf("unknown province/territory code %q", province)
	}
	num := strings.ToUpper(number)

	url := fmt.Sprintf("%s/csv/%s/daily/%s_%s_daily_hydrometric.csv", c.baseURL, prov, prov, num)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	readings, err := parseDailyData(body, prov)
	if err != nil {
		return nil, fmt.Errorf("parsing daily data for %s: %w", num, err)
	}
	return readings, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close() //nolint:errcheck
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}

// parseStationList reads the station list CSV: station number, name,
// latitude, longitude, province, timezone.
func parseStationList(r io.Reader) ([]Station, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var stations []Station
	header := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(rec) < 6 {
			return nil, fmt.Errorf("expected 6 fields, got %d", len(rec))
		}

		lat, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("station %s: parsing latitude: %w", rec[0], err)
		}
		lon, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("station %s: parsing longitude: %w", rec[0], err)
		}

		stations = append(stations, Station{
			Number:    rec[0],
			Name:      rec[1],
			Latitude:  lat,
			Longitude: lon,
			Province:  rec[4],
			Timezone:  rec[5],
		})
	}
	return stations, nil
}

// parseDailyData reads a station's daily CSV, which carries water level
// and discharge side by side, and pivots each source row into a Level
// reading and a Flow reading.
func parseDailyData(r io.Reader, province string) ([]Reading, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var readings []Reading
	header := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(rec) < 10 {
			return nil, fmt.Errorf("expected 10 fields, got %d", len(rec))
		}

		ts, err := time.Parse(time.RFC3339, rec[1])
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", rec[1], err)
		}
		level, err := parseValue(rec[2])
		if err != nil {
			return nil, fmt.Errorf("parsing water level %q: %w", rec[2], err)
		}
		flow, err := parseValue(rec[6])
		if err != nil {
			return nil, fmt.Errorf("parsing discharge %q: %w", rec[6], err)
		}

		readings = append(readings,
			Reading{
				Number: rec[0], Province: province, Timestamp: ts,
				Parameter: Level, Value: level,
				Grade: rec[3], Symbol: rec[4], Code: rec[5],
			},
			Reading{
				Number: rec[0], Province: province, Timestamp: ts,
				Parameter: Flow, Value: flow,
				Grade: rec[7], Symbol: rec[8], Code: rec[9],
			})
	}
	return readings, nil
}

// parseValue reads a numeric CSV field that is empty when the station
// did not report the parameter.
func parseValue(s string) (sql.NullFloat64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: v, Valid: true}, nil
}
