package store

import (
	"fmt"
	"strconv"
	"time"
)

// coreDataEpochOffset is the number of seconds between the Unix epoch and
// 2001-01-01T00:00:00Z, the reference date of Core Data timestamps.
const coreDataEpochOffset = 978307200

// coreDataTime scans a Core Data timestamp column.
//
// Bear stores REAL seconds since 2001-01-01. Columns declared TIMESTAMP may
// come back from the driver as time.Time when the value is an integer, so
// that shape is accepted too.
type coreDataTime struct {
	Time  time.Time
	Valid bool
}

func (c *coreDataTime) Scan(src any) error {
	c.Valid = false
	switch v := src.(type) {
	case nil:
		return nil
	case float64:
		c.Time = fromCoreDataSeconds(v)
	case int64:
		c.Time = fromCoreDataSeconds(float64(v))
	case time.Time:
		// the driver read the integer as Unix seconds
		c.Time = fromCoreDataSeconds(float64(v.Unix()))
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	default:
		return fmt.Errorf("unsupported core data timestamp type %T", src)
	}
	c.Valid = true
	return nil
}

func (c *coreDataTime) parse(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid core data timestamp %q: %w", s, err)
	}
	c.Time = fromCoreDataSeconds(f)
	c.Valid = true
	return nil
}

// Ptr returns nil for NULL columns.
func (c coreDataTime) Ptr() *time.Time {
	if !c.Valid {
		return nil
	}
	t := c.Time
	return &t
}

func fromCoreDataSeconds(s float64) time.Time {
	sec := int64(s)
	nsec := int64((s - float64(sec)) * float64(time.Second))
	return time.Unix(sec+coreDataEpochOffset, nsec).UTC()
}

