package realtime

import (
	"math"
	"sort"
	"time"
)

// DailyMean is the mean of one station's readings of one parameter over
// one UTC calendar day. Value is NaN when the day has no defined mean.
type DailyMean struct {
	Number    string
	Province  string
	Date      time.Time
	Parameter Parameter
	Value     float64
}

// DailyMeans collapses readings into daily means per station, parameter,
// and UTC calendar date. A missing value makes its day's mean undefined
// unless dropMissing is set, in which case missing values are excluded
// before averaging. Days left with no values at all get NaN either way.
func DailyMeans(readings []Reading, dropMissing bool) []DailyMean {
	type key struct {
		number   string
		province string
		date     time.Time
		param    Parameter
	}
	type group struct {
		sum     float64
		n       int
		missing bool
	}

	groups := make(map[key]*group)
	for _, r := range readings {
		ts := r.Timestamp.UTC()
		k := key{
			number:   r.Number,
			province: r.Province,
			date:     time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			param:    r.Parameter,
		}
		g := groups[k]
		if g == nil {
			g = &group{}
			groups[k] = g
		}
		if r.Value.Valid {
			g.sum += r.Value.Float64
			g.n++
		} else {
			g.missing = true
		}
	}

	means := make([]DailyMean, 0, len(groups))
	for k, g := range groups {
		value := math.NaN()
		if g.n > 0 && (dropMissing || !g.missing) {
			value = g.sum / float64(g.n)
		}
		means = append(means, DailyMean{
			Number:    k.number,
			Province:  k.province,
			Date:      k.date,
			Parameter: k.param,
			Value:     value,
		})
	}

	sort.Slice(means, func(i, j int) bool {
		a, b := means[i], means[j]
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		if a.Province != b.Province {
			return a.Province < b.Province
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Parameter < b.Parameter
	})
	return means
}
