package models

import "time"

// timestampLayout is the text rendering used for every timestamp field in
// serialized payloads.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
