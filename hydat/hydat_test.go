package hydat

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// newTestDB writes a miniature HYDAT database to a temp directory and
// returns its path. The seed rows mirror the real tables: reference
// lists, the single-row VERSION table, and a few stations with NULLs
// where the archive has them.
func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DBFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening fixture db: %v", err)
	}
	defer db.Close() //nolint:errcheck

	for _, stmt := range []string{
		`CREATE TABLE AGENCY_LIST (AGENCY_ID INTEGER, AGENCY_EN TEXT, AGENCY_FR TEXT)`,
		`INSERT INTO AGENCY_LIST VALUES (1, 'WATER SURVEY OF CANADA', 'RELEVES HYDROLOGIQUES DU CANADA')`,
		`INSERT INTO AGENCY_LIST VALUES (2, 'ALBERTA ENVIRONMENT', NULL)`,

		`CREATE TABLE REGIONAL_OFFICE_LIST (REGIONAL_OFFICE_ID INTEGER, REGIONAL_OFFICE_NAME_EN TEXT, REGIONAL_OFFICE_NAME_FR TEXT)`,
		`INSERT INTO REGIONAL_OFFICE_LIST VALUES (1, 'VANCOUVER', 'VANCOUVER')`,
		`INSERT INTO REGIONAL_OFFICE_LIST VALUES (2, 'CALGARY', 'CALGARY')`,

		`CREATE TABLE DATUM_LIST (DATUM_ID INTEGER, DATUM_EN TEXT, DATUM_FR TEXT)`,
		`INSERT INTO DATUM_LIST VALUES (10, 'ASSUMED DATUM', 'NIVEAU DE REFERENCE SUPPOSE')`,
		`INSERT INTO DATUM_LIST VALUES (405, 'GEODETIC SURVEY OF CANADA DATUM', NULL)`,

		`CREATE TABLE VERSION (Version TEXT, Date TEXT)`,
		`INSERT INTO VERSION VALUES ('2.2.4', '2020-01-01 00:00:00')`,

		`CREATE TABLE STATIONS (
			STATION_NUMBER TEXT, STATION_NAME TEXT, PROV_TERR_STATE_LOC TEXT,
			REGIONAL_OFFICE_ID INTEGER, HYD_STATUS TEXT, SED_STATUS TEXT,
			LATITUDE REAL, LONGITUDE REAL,
			DRAINAGE_AREA_GROSS REAL, DRAINAGE_AREA_EFFECT REAL,
			RHBN INTEGER, REAL_TIME INTEGER,
			CONTRIBUTOR_ID INTEGER, OPERATOR_ID INTEGER, DATUM_ID INTEGER)`,
		`INSERT INTO STATIONS VALUES
			('08MF005', 'FRASER RIVER AT HOPE', 'BC',
			 1, 'A', 'A', 49.3808, -121.4514, 217000, 217000, 1, 1, 1, 1, 405)`,
		`INSERT INTO STATIONS VALUES
			('05AA008', 'CROWSNEST RIVER AT FRANK', 'AB',
			 2, 'A', NULL, 49.5975, -114.4117, 403, NULL, 1, 1, 1, 1, 10)`,
		`INSERT INTO STATIONS VALUES
			('02AB021', 'STURGEON RIVER AT OUTLET OF SALVESEN LAKE', 'ON',
			 NULL, 'D', NULL, 48.9783, -89.6409, NULL, NULL, 0, 0, NULL, NULL, NULL)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seeding fixture db: %v", err)
		}
	}
	return path
}
