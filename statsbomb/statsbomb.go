// Package statsbomb reads StatsBomb open data JSON into go-gg tables.
//
// Event, match, competition and lineup files each have their own
// reader. Nested objects are flattened into underscore separated
// columns, coordinate lists are split into x and y columns, and the
// links between related events come out as their own table. The
// readers take an io.Reader; the File variants open a path and derive
// the match id from the file name.
//
// StatsBomb publishes the open data under a user agreement. Register
// with them and follow it when publishing anything derived from these
// files.
package statsbomb

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pitch.statsbomb'
func tracer() tracing.Trace {
	return tracing.Select("pitch.statsbomb")
}

// matchIDFromPath extracts the numeric match id from a file name like
// 'events/7430.json'.
func matchIDFromPath(path string) (int64, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id, err := strconv.ParseInt(base, 10, 64)
	if err != nil {
		return 0, errors.NotValidf("match id in file name %q", path)
	}
	return id, nil
}

// parseTime tries the layouts in turn and returns the zero time when
// none matches.
func parseTime(s string, layouts ...string) time.Time {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
