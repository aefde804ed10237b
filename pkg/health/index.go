package health

// Readings carries the raw pollutant values used for the index. A nil field
// means the sensor did not report it.
type Readings struct {
	PM25 *float64 `json:"pm25"`
	PM10 *float64 `json:"pm10"`
	CO2  *float64 `json:"co2"`
	TVOC *float64 `json:"tvoc"`
}

// Particulate merges the PM2.5 and PM10 scores into one category score.
func (s *Scorer) Particulate(r Readings) (int, bool) {
	pm25, ok25 := s.Score(PM25, r.PM25)
	pm10, ok10 := s.Score(PM10, r.PM10)

	switch {
	case ok25 && ok10:
		return min(pm25, pm10), true
	case ok25:
		return pm25, true
	case ok10:
		return pm10, true
	}
	return 0, false
}

// Index is the worst score across the particulate, CO2 and TVOC categories.
// It is not ok when no category had a reading.
func (s *Scorer) Index(r Readings) (int, bool) {
	index, found := 100, false

	collect := func(score int, ok bool) {
		if !ok {
			return
		}
		found = true
		index = min(index, score)
	}

	collect(s.Particulate(r))
	collect(s.Score(CO2, r.CO2))
	collect(s.Score(TVOC, r.TVOC))

	if !found {
		return 0, false
	}
	return index, true
}

// ComputeIndex scores r with the default tables.
func ComputeIndex(r Readings) (int, bool) {
	return defaultScorer.Index(r)
}
