package logmetrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

// TimeWindow is the start and end of a transfer as nanosecond Unix timestamps.
type TimeWindow struct {
	Start int64
	End   int64
}

// TransferSeconds returns End - Start in seconds. Both timestamps are first
// truncated to whole seconds, so sub-second parts are dropped. A window that
// ends before it starts yields a negative duration.
func (w TimeWindow) TransferSeconds() float64 {
	start := time.Unix(w.Start/int64(time.Second), 0)
	end := time.Unix(w.End/int64(time.Second), 0)
	return end.Sub(start).Seconds()
}

// ReadTimeWindow parses a JSON object with integer "start" and "end" keys.
func ReadTimeWindow(path string) (TimeWindow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TimeWindow{}, err
	}
	return parseTimeWindow(path, data)
}

// ComputeTransferSeconds reads the time file at path and returns its
// transfer duration.
func ComputeTransferSeconds(path string) (float64, error) {
	w, err := ReadTimeWindow(path)
	if err != nil {
		return 0, err
	}
	return w.TransferSeconds(), nil
}

func parseTimeWindow(path string, data []byte) (TimeWindow, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return TimeWindow{}, fmt.Errorf("%w: %s: trailing data after JSON object", ErrFormat, path)
	}
	if fields == nil {
		return TimeWindow{}, fmt.Errorf("%w: %s: not a JSON object", ErrFormat, path)
	}

	var w TimeWindow
	for _, f := range []struct {
		name string
		dst  *int64
	}{{"start", &w.Start}, {"end", &w.End}} {
		raw, ok := fields[f.name]
		if !ok {
			return TimeWindow{}, &MissingFieldError{Path: path, Field: f.name}
		}
		v, err := toNanos(raw)
		if err != nil {
			return TimeWindow{}, fmt.Errorf("%w: %s: field %q: %v", ErrFormat, path, f.name, err)
		}
		*f.dst = v
	}
	return w, nil
}

// toNanos accepts a JSON number or a string holding one.
func toNanos(v interface{}) (int64, error) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = t
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%s is out of range", s)
	}
	return int64(f), nil
}
