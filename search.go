package tidyhydat

import (
	"context"
	"fmt"
	"strings"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
	"github.com/NunoEdgarGub1/tidyhydat/realtime"
)

// StationProvider lists the stations currently publishing realtime data.
// *realtime.Client implements it.
type StationProvider interface {
	Stations(ctx context.Context) ([]realtime.Station, error)
}

// SearchStationName returns every station, realtime or historical, whose
// name contains term. Matching is case-insensitive and term is taken
// literally, not as a pattern. No matches is not an error: the result is
// simply empty.
func SearchStationName(ctx context.Context, term string, src hydat.Source, rt StationProvider) ([]Station, error) {
	return search(ctx, term, src, rt, func(s Station) string { return s.Name })
}

// SearchStationNumber is SearchStationName over station numbers.
func SearchStationNumber(ctx context.Context, term string, src hydat.Source, rt StationProvider) ([]Station, error) {
	return search(ctx, term, src, rt, func(s Station) string { return s.Number })
}

func search(ctx context.Context, term string, src hydat.Source, rt StationProvider, field func(Station) string) ([]Station, error) {
	stations, err := allStations(ctx, src, rt)
	if err != nil {
		return nil, err
	}

	needle := strings.ToUpper(term)
	var matches []Station
	for _, s := range stations {
		if strings.Contains(strings.ToUpper(field(s)), needle) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

// allStations merges the realtime station list with the HYDAT STATIONS
// table. Realtime entries come first and win duplicate station numbers,
// so a station reporting today carries its current name and coordinates.
func allStations(ctx context.Context, src hydat.Source, rt StationProvider) ([]Station, error) {
	live, err := rt.Stations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing realtime stations: %w", err)
	}
	historical, err := hydat.Stations(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("listing hydat stations: %w", err)
	}

	stations := make([]Station, 0, len(live)+len(historical))
	seen := make(map[string]bool, len(live)+len(historical))
	for _, s := range live {
		if seen[s.Number] {
			continue
		}
		seen[s.Number] = true
		stations = append(stations, fromRealtime(s))
	}
	for _, s := range historical {
		if seen[s.Number] {
			continue
		}
		seen[s.Number] = true
		stations = append(stations, fromHydat(s))
	}
	return stations, nil
}
