package tidyhydat

import (
	"database/sql"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
	"github.com/NunoEdgarGub1/tidyhydat/realtime"
)

// Station is the cross-source view of a hydrometric station: the
// attributes both HYDAT and the realtime datamart can provide.
type Station struct {
	Number    string
	Name      string
	Province  string
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
}

func fromRealtime(s realtime.Station) Station {
	return Station{
		Number:    s.Number,
		Name:      s.Name,
		Province:  s.Province,
		Latitude:  sql.NullFloat64{Float64: s.Latitude, Valid: true},
		Longitude: sql.NullFloat64{Float64: s.Longitude, Valid: true},
	}
}

func fromHydat(s hydat.Station) Station {
	return Station{
		Number:    s.Number,
		Name:      s.Name,
		Province:  s.Province,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}
