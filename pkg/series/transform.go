package series

import (
	"time"

	"github.com/sprsquish/airplus/pkg/units"
)

const labelFormat = "15:04"

type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type Series struct {
	ID   string  `json:"id"`
	Data []Point `json:"data"`
}

// Transform builds one series per metric of the first sample. Later samples
// cannot add metrics; a sample missing a metric adds no point to it. Labels
// are 24-hour clock times in loc, local time when nil.
func Transform(h Historic, loc *time.Location) []Series {
	out := []Series{}

	first := h.first()
	if first == nil {
		return out
	}
	if loc == nil {
		loc = time.Local
	}

	for _, m := range first.Metrics {
		s := Series{ID: m.Name, Data: []Point{}}
		for _, sample := range h {
			if sample == nil || !sample.HasTimestamp {
				continue
			}
			v, ok := sample.Value(m.Name)
			if !ok || v == nil {
				continue
			}
			s.Data = append(s.Data, Point{
				X: label(sample.Timestamp, loc),
				Y: units.RoundUpIfNeeded(*v),
			})
		}

		if len(s.Data) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (h Historic) first() *Sample {
	for _, s := range h {
		if s != nil {
			return s
		}
	}
	return nil
}

func label(ts float64, loc *time.Location) string {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).In(loc).Format(labelFormat)
}
