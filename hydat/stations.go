package hydat

import (
	"context"
	"database/sql"
	"fmt"
)

// Station is one row of the STATIONS table, the master list of every
// hydrometric station HYDAT has data for.
type Station struct {
	Number             string
	Name               string
	Province           string
	RegionalOfficeID   sql.NullInt64
	HydStatus          sql.NullString
	SedStatus          sql.NullString
	Latitude           sql.NullFloat64
	Longitude          sql.NullFloat64
	DrainageAreaGross  sql.NullFloat64
	DrainageAreaEffect sql.NullFloat64
	RHBN               bool
	RealTime           bool
	ContributorID      sql.NullInt64
	OperatorID         sql.NullInt64
	DatumID            sql.NullInt64
}

// Stations returns every station in the database, ordered by station
// number.
func Stations(ctx context.Context, src Source) ([]Station, error) {
	db, owned, err := src.open()
	if err != nil {
		return nil, err
	}
	if owned {
		defer db.Close() //nolint:errcheck
	}

	rows, err := db.QueryContext(ctx, `
		SELECT STATION_NUMBER, STATION_NAME, PROV_TERR_STATE_LOC,
			REGIONAL_OFFICE_ID, HYD_STATUS, SED_STATUS,
			LATITUDE, LONGITUDE,
			DRAINAGE_AREA_GROSS, DRAINAGE_AREA_EFFECT,
			RHBN, REAL_TIME,
			CONTRIBUTOR_ID, OPERATOR_ID, DATUM_ID
		FROM STATIONS
		ORDER BY STATION_NUMBER`)
	if err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var stations []Station
	for rows.Next() {
		var st Station
		var rhbn, realTime sql.NullBool
		if err := rows.Scan(
			&st.Number, &st.Name, &st.Province,
			&st.RegionalOfficeID, &st.HydStatus, &st.SedStatus,
			&st.Latitude, &st.Longitude,
			&st.DrainageAreaGross, &st.DrainageAreaEffect,
			&rhbn, &realTime,
			&st.ContributorID, &st.OperatorID, &st.DatumID,
		); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		st.RHBN = rhbn.Bool
		st.RealTime = realTime.Bool
		stations = append(stations, st)
	}
	return stations, rows.Err()
}
