// Package tidyhydat finds Canadian hydrometric stations across the two
// national sources: the HYDAT archive of validated historical data and
// the realtime datamart.
//
// The hydat subpackage reads the HYDAT SQLite database and the realtime
// subpackage reads the live CSV feeds. This package joins the two so a
// search sees every station known to either source, with the realtime
// attributes winning for stations reporting today.
package tidyhydat
