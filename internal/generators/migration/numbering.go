package migration

import (
	"time"
)

// Number formats a migration number from a base time plus an offset in
// seconds. Artifacts generated in one run share the base time and take
// increasing offsets, so their filenames sort in emission order.
func Number(baseTime time.Time, offset int) string {
	t := baseTime
	if t.IsZero() {
		t = time.Now().UTC()
	} else {
		t = t.UTC()
	}
	if offset > 0 {
		t = t.Add(time.Duration(offset) * time.Second)
	}
	return t.Format("2006_01_02_150405")
}
