package hydat

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"
)

func TestAgencyList(t *testing.T) {
	src := FromPath(newTestDB(t))

	agencies, err := AgencyList(context.Background(), src)
	if err != nil {
		t.Fatalf("AgencyList: %v", err)
	}
	if len(agencies) != 2 {
		t.Fatalf("got %d agencies, want 2", len(agencies))
	}

	wsc := agencies[0]
	if wsc.ID != 1 {
		t.Errorf("id = %d, want 1", wsc.ID)
	}
	if wsc.NameEn.String != "WATER SURVEY OF CANADA" {
		t.Errorf("name_en = %q, want WATER SURVEY OF CANADA", wsc.NameEn.String)
	}
	if !wsc.NameFr.Valid {
		t.Error("expected french name for agency 1")
	}
	if agencies[1].NameFr.Valid {
		t.Error("expected NULL french name for agency 2")
	}
}

func TestRegOfficeList(t *testing.T) {
	src := FromPath(newTestDB(t))

	offices, err := RegOfficeList(context.Background(), src)
	if err != nil {
		t.Fatalf("RegOfficeList: %v", err)
	}
	if len(offices) != 2 {
		t.Fatalf("got %d offices, want 2", len(offices))
	}
	if offices[0].NameEn.String != "VANCOUVER" {
		t.Errorf("name_en = %q, want VANCOUVER", offices[0].NameEn.String)
	}
}

func TestDatumList(t *testing.T) {
	src := FromPath(newTestDB(t))

	datums, err := DatumList(context.Background(), src)
	if err != nil {
		t.Fatalf("DatumList: %v", err)
	}
	if len(datums) != 2 {
		t.Fatalf("got %d datums, want 2", len(datums))
	}
	if datums[1].ID != 405 {
		t.Errorf("id = %d, want 405", datums[1].ID)
	}
	if datums[1].NameEn.String != "GEODETIC SURVEY OF CANADA DATUM" {
		t.Errorf("name_en = %q, want GEODETIC SURVEY OF CANADA DATUM", datums[1].NameEn.String)
	}
}

func TestVersion(t *testing.T) {
	src := FromPath(newTestDB(t))

	v, err := Version(context.Background(), src)
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v.Version != "2.2.4" {
		t.Errorf("version = %q, want 2.2.4", v.Version)
	}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !v.Date.Equal(want) {
		t.Errorf("date = %v, want %v", v.Date, want)
	}
}

func TestVersionMalformedDate(t *testing.T) {
	path := newTestDB(t)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE VERSION SET Date = 'first quarter 2020'`); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = Version(context.Background(), FromPath(path))
	if err == nil {
		t.Fatal("expected error for malformed version date")
	}
	if !strings.Contains(err.Error(), "version date") {
		t.Errorf("error %q should mention the version date", err)
	}
}

func TestParseVersionDate(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want time.Time
	}{
		{"hydat release format", "2020-01-01 00:00:00", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2021-04-20T14:59:59Z", time.Date(2021, 4, 20, 14, 59, 59, 0, time.UTC)},
		{"no zone", "2013-05-01T07:52:02", time.Date(2013, 5, 1, 7, 52, 2, 0, time.UTC)},
		{"date only", "2019-11-12", time.Date(2019, 11, 12, 0, 0, 0, 0, time.UTC)},
		{"already parsed", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionDate(tt.raw)
			if err != nil {
				t.Fatalf("parseVersionDate(%v): %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := parseVersionDate(42); err == nil {
		t.Error("expected error for unexpected type")
	}
	if _, err := parseVersionDate("garbage"); err == nil {
		t.Error("expected error for unparseable string")
	}
}
