package hydat

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Agency is one row of the AGENCY_LIST reference table, an organization
// that contributes to or operates hydrometric stations.
type Agency struct {
	ID     int64
	NameEn sql.NullString
	NameFr sql.NullString
}

// RegOffice is one row of the REGIONAL_OFFICE_LIST reference table.
type RegOffice struct {
	ID     int64
	NameEn sql.NullString
	NameFr sql.NullString
}

// Datum is one row of the DATUM_LIST reference table, a vertical
// reference surface for water level measurements.
type Datum struct {
	ID     int64
	NameEn sql.NullString
	NameFr sql.NullString
}

// VersionInfo identifies the release of a HYDAT database file.
type VersionInfo struct {
	Version string
	Date    time.Time
}

// AgencyList returns every agency in the database.
func AgencyList(ctx context.Context, src Source) ([]Agency, error) {
	db, owned, err := src.open()
	if err != nil {
		return nil, err
	}
	if owned {
		defer db.Close() //nolint:errcheck
	}

	rows, err := db.QueryContext(ctx, `SELECT AGENCY_ID, AGENCY_EN, AGENCY_FR FROM AGENCY_LIST`)
	if err != nil {
		return nil, fmt.Errorf("querying agency list: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var agencies []Agency
	for rows.Next() {
		var a Agency
		if err := rows.Scan(&a.ID, &a.NameEn, &a.NameFr); err != nil {
			return nil, fmt.Errorf("scanning agency: %w", err)
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}

// RegOfficeList returns every regional office in the database.
func RegOfficeList(ctx context.Context, src Source) ([]RegOffice, error) {
	db, owned, err := src.open()
	if err != nil {
		return nil, err
	}
	if owned {
		defer db.Close() //nolint:errcheck
	}

	rows, err := db.QueryContext(ctx, `SELECT REGIONAL_OFFICE_ID, REGIONAL_OFFICE_NAME_EN, REGIONAL_OFFICE_NAME_FR FROM REGIONAL_OFFICE_LIST`)
	if err != nil {
		return nil, fmt.Errorf("querying regional office list: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var offices []RegOffice
	for rows.Next() {
		var o RegOffice
		if err := rows.Scan(&o.ID, &o.NameEn, &o.NameFr); err != nil {
			return nil, fmt.Errorf("scanning regional office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, rows.Err()
}

// DatumList returns every vertical datum in the database.
func DatumList(ctx context.Context, src Source) ([]Datum, error) {
	db, owned, err := src.open()
	if err != nil {
		return nil, err
	}
	if owned {
		defer db.Close() //nolint:errcheck
	}

	rows, err := db.QueryContext(ctx, `SELECT DATUM_ID, DATUM_EN, DATUM_FR FROM DATUM_LIST`)
	if err != nil {
		return nil, fmt.Errorf("querying datum list: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var datums []Datum
	for rows.Next() {
		var d Datum
		if err := rows.Scan(&d.ID, &d.NameEn, &d.NameFr); err != nil {
			return nil, fmt.Errorf("scanning datum: %w", err)
		}
		datums = append(datums, d)
	}
	return datums, rows.Err()
}

// Version reports the version number and release date of the HYDAT
// database itself.
func Version(ctx context.Context, src Source) (*VersionInfo, error) {
	db, owned, err := src.open()
	if err != nil {
		return nil, err
	}
	if owned {
		defer db.Close() //nolint:errcheck
	}

	var v VersionInfo
	var dateRaw any
	if err := db.QueryRowContext(ctx, `SELECT Version, Date FROM VERSION`).Scan(&v.Version, &dateRaw); err != nil {
		return nil, fmt.Errorf("querying version: %w", err)
	}
	v.Date, err = parseVersionDate(dateRaw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseVersionDate handles both time.Time and string date values, in the
// formats seen across HYDAT releases.
func parseVersionDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range []string{
			"2006-01-02 15:04:05",
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02",
		} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unable to parse version date: %q", t)
	default:
		return time.Time{}, fmt.Errorf("unexpected version date type: %T", v)
	}
}
