// Package series pivots historic multi-metric samples into per-metric chart
// series.
package series

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const timestampKey = "timestamp"

type Metric struct {
	Name  string
	Value *float64
}

// Sample is one historic row. Metrics keep the order their keys had in the
// source document.
type Sample struct {
	Timestamp    float64
	HasTimestamp bool
	Metrics      []Metric
}

func NewSample(ts int64, metrics ...Metric) *Sample {
	return &Sample{Timestamp: float64(ts), HasTimestamp: true, Metrics: metrics}
}

func (s *Sample) Value(name string) (*float64, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

func (s *Sample) Set(name string, v *float64) {
	for i := range s.Metrics {
		if s.Metrics[i].Name == name {
			s.Metrics[i].Value = v
			return
		}
	}
	s.Metrics = append(s.Metrics, Metric{Name: name, Value: v})
}

func (s *Sample) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sample is not an object: %v", tok)
	}

	*s = Sample{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("sample key %q: %w", key, err)
		}

		v := number(raw)
		if key == timestampKey {
			if v != nil {
				s.Timestamp, s.HasTimestamp = *v, true
			}
			continue
		}
		s.Set(key, v)
	}

	_, err = dec.Token()
	return err
}

func (s Sample) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if s.HasTimestamp {
		fmt.Fprintf(&buf, "%q:%s", timestampKey, strconv.FormatFloat(s.Timestamp, 'f', -1, 64))
	}
	for i, m := range s.Metrics {
		if i > 0 || s.HasTimestamp {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(m.Name)
		buf.Write(key)
		buf.WriteByte(':')
		if m.Value == nil {
			buf.WriteString("null")
		} else {
			buf.WriteString(strconv.FormatFloat(*m.Value, 'f', -1, 64))
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// number coerces a decoded JSON value to a finite float. Numeric strings
// count, anything else is absent.
func number(raw any) *float64 {
	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = v
	default:
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Historic is an ordered list of samples. Rows that were not objects decode
// to nil entries.
type Historic []*Sample

// UnmarshalJSON accepts either a bare array of samples or an object wrapping
// one under "historic". Anything else yields an empty history.
func (h *Historic) UnmarshalJSON(data []byte) error {
	*h = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var rows []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &rows); err != nil {
			return err
		}
	case '{':
		var wrapper struct {
			Historic json.RawMessage `json:"historic"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return err
		}
		inner := bytes.TrimSpace(wrapper.Historic)
		if len(inner) == 0 || inner[0] != '[' {
			return nil
		}
		if err := json.Unmarshal(inner, &rows); err != nil {
			return err
		}
	default:
		return nil
	}

	samples := make(Historic, 0, len(rows))
	for _, row := range rows {
		row = bytes.TrimSpace(row)
		if len(row) == 0 || row[0] != '{' {
			samples = append(samples, nil)
			continue
		}

		var s Sample
		if err := json.Unmarshal(row, &s); err != nil {
			return err
		}
		samples = append(samples, &s)
	}
	*h = samples
	return nil
}
