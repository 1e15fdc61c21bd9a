package expense

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp accepts the date shapes the expenses service has been seen to
// emit: RFC 3339 with or without a colon in the offset, zone-less ISO
// date-times, plain dates and epoch millis. Anything else decodes to the zero
// time so one odd record does not break the whole list.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = parseTimestamp(bytes.TrimSpace(data))
	return nil
}

func parseTimestamp(data []byte) time.Time {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return time.Time{}
	}

	if data[0] != '"' {
		millis, err := strconv.ParseFloat(string(data), 64)
		if err != nil || math.IsNaN(millis) || math.IsInf(millis, 0) {
			logger.Debug("unsupported timestamp", zap.ByteString("raw", data))
			return time.Time{}
		}
		return time.UnixMilli(int64(millis)).UTC()
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil || raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed
		}
	}
	logger.Debug("unsupported timestamp", zap.String("raw", raw))
	return time.Time{}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
