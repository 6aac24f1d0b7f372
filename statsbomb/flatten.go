package statsbomb

import (
	"sort"
	"strconv"
	"strings"
)

// flatName joins a nested key path onto its parent column name. The
// prefix is skipped when the path already starts with it, so a
// 'player' object holding a 'player_id' key still yields 'player_id'
// rather than 'player_player_id'.
func flatName(col, name string) string {
	if col == "" || strings.HasPrefix(name, col) {
		return name
	}
	return col + "_" + name
}

// setObject flattens one nested JSON object into the current row of f,
// joining nested keys with underscores under the column name col.
// List values never enter the frame; they are recorded in lists under
// their flattened name for the caller to deal with. Keys are visited
// in sorted order so column order is stable.
func setObject(f *frame, col string, obj map[string]interface{}, lists map[string][]interface{}) {
	flattenInto(f, col, "", obj, lists)
}

func flattenInto(f *frame, col, path string, obj map[string]interface{}, lists map[string][]interface{}) {
	for _, k := range sortedKeys(obj) {
		p := k
		if path != "" {
			p = path + "_" + k
		}
		switch v := obj[k].(type) {
		case map[string]interface{}:
			flattenInto(f, col, p, v, lists)
		case []interface{}:
			if lists != nil {
				lists[flatName(col, p)] = v
			}
		case nil:
		default:
			f.set(flatName(col, p), v)
		}
	}
}

// setRecord writes one top level JSON record into the current frame
// row. Each nested object becomes a group of columns named after its
// key.
func setRecord(f *frame, obj map[string]interface{}, lists map[string][]interface{}) {
	for _, k := range sortedKeys(obj) {
		switch v := obj[k].(type) {
		case map[string]interface{}:
			setObject(f, k, v, lists)
		case []interface{}:
			if lists != nil {
				lists[k] = v
			}
		case nil:
		default:
			f.set(k, v)
		}
	}
}

func sortedKeys(obj map[string]interface{}) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitLocation turns a per row coordinate list into the given float
// columns, one per list position. The columns are created even when no
// row carries the list, and rows whose list is missing or short stay
// NaN.
func splitLocation(f *frame, rowLists []map[string][]interface{}, name string, cols ...string) {
	for _, c := range cols {
		f.col(c, kindFloat).pad(f.rows)
	}
	for i, rl := range rowLists {
		l, ok := rl[name]
		if !ok {
			continue
		}
		for j, c := range cols {
			if j >= len(l) {
				break
			}
			if v, ok := l[j].(float64); ok {
				f.cols[c].fs[i] = v
			}
		}
	}
}

// mergeCols collapses every column whose name contains name into one
// column holding the first value present per row, scanning in column
// order. The source columns are dropped and the merged column appended
// under the plain name. Nothing happens when no column matches.
func mergeCols(f *frame, name string) {
	var match []string
	for _, n := range f.names {
		if strings.Contains(n, name) {
			match = append(match, n)
		}
	}
	if len(match) == 0 {
		return
	}
	f.finish()
	merged := &column{kind: f.cols[match[0]].kind}
	merged.pad(f.rows)
	for i := 0; i < f.rows; i++ {
		for _, n := range match {
			c := f.cols[n]
			if c.kind != merged.kind || c.missing(i) {
				continue
			}
			switch c.kind {
			case kindFloat:
				merged.fs[i] = c.fs[i]
			case kindString:
				merged.ss[i] = c.ss[i]
			case kindBool:
				merged.bs[i] = c.bs[i]
			}
			break
		}
	}
	for _, n := range match {
		f.drop(n)
	}
	f.cols[name] = merged
	f.names = append(f.names, name)
}

// timeParts are the pieces of an event timestamp. The event clock
// restarts at zero every period.
type timeParts struct {
	minute, second, millisecond int64
}

// parseTimestamp splits a 'HH:MM:SS.mmm' timestamp. Hours are dropped.
func parseTimestamp(s string) timeParts {
	var frac string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i+1:]
	}
	var tp timeParts
	if parts := strings.Split(s, ":"); len(parts) == 3 {
		m, _ := strconv.Atoi(parts[1])
		sec, _ := strconv.Atoi(parts[2])
		tp.minute, tp.second = int64(m), int64(sec)
	}
	for len(frac) < 3 {
		frac += "0"
	}
	ms, _ := strconv.Atoi(frac[:3])
	tp.millisecond = int64(ms)
	return tp
}

// explode visits the captured list items of one column position by
// position: every first item in row order, then every second item, and
// so on. pos is the 1 based position within the list.
func explode(rowLists []map[string][]interface{}, name string, fn func(row, pos int, v interface{})) {
	maxLen := 0
	for _, rl := range rowLists {
		if n := len(rl[name]); n > maxLen {
			maxLen = n
		}
	}
	for k := 0; k < maxLen; k++ {
		for i, rl := range rowLists {
			if l := rl[name]; k < len(l) {
				fn(i, k+1, l[k])
			}
		}
	}
}
