package statsbomb

import (
	"math"
	"sort"
	"time"

	"github.com/aclements/go-gg/table"
)

// colKind enumerates the value types a frame column can hold. JSON
// scalars map to Float, String and Bool; Int and Time columns are
// produced by the readers themselves (counters, ids, parsed dates).
type colKind int

const (
	kindFloat colKind = iota
	kindInt
	kindString
	kindBool
	kindTime
)

// column is one typed column of a frame. Only the slice matching kind
// is in use. Missing cells hold NaN, 0, "", false or the zero time.
type column struct {
	kind colKind
	fs   []float64
	is   []int64
	ss   []string
	bs   []bool
	ts   []time.Time
}

func (c *column) len() int {
	switch c.kind {
	case kindFloat:
		return len(c.fs)
	case kindInt:
		return len(c.is)
	case kindString:
		return len(c.ss)
	case kindBool:
		return len(c.bs)
	}
	return len(c.ts)
}

// pad extends the column with missing cells up to n rows.
func (c *column) pad(n int) {
	for c.len() < n {
		switch c.kind {
		case kindFloat:
			c.fs = append(c.fs, math.NaN())
		case kindInt:
			c.is = append(c.is, 0)
		case kindString:
			c.ss = append(c.ss, "")
		case kindBool:
			c.bs = append(c.bs, false)
		case kindTime:
			c.ts = append(c.ts, time.Time{})
		}
	}
}

// missing reports whether row i holds no value.
func (c *column) missing(i int) bool {
	switch c.kind {
	case kindFloat:
		return math.IsNaN(c.fs[i])
	case kindInt:
		return false
	case kindString:
		return c.ss[i] == ""
	case kindBool:
		return !c.bs[i]
	}
	return c.ts[i].IsZero()
}

// compare orders rows i and j. Missing floats sort after everything.
func (c *column) compare(i, j int) int {
	switch c.kind {
	case kindFloat:
		a, b := c.fs[i], c.fs[j]
		switch {
		case math.IsNaN(a) && math.IsNaN(b):
			return 0
		case math.IsNaN(a):
			return 1
		case math.IsNaN(b):
			return -1
		case a < b:
			return -1
		case a > b:
			return 1
		}
	case kindInt:
		switch {
		case c.is[i] < c.is[j]:
			return -1
		case c.is[i] > c.is[j]:
			return 1
		}
	case kindString:
		switch {
		case c.ss[i] < c.ss[j]:
			return -1
		case c.ss[i] > c.ss[j]:
			return 1
		}
	case kindBool:
		switch {
		case !c.bs[i] && c.bs[j]:
			return -1
		case c.bs[i] && !c.bs[j]:
			return 1
		}
	case kindTime:
		switch {
		case c.ts[i].Before(c.ts[j]):
			return -1
		case c.ts[j].Before(c.ts[i]):
			return 1
		}
	}
	return 0
}

// reorder rearranges the rows, placing the old row perm[i] at i.
func (c *column) reorder(perm []int) {
	switch c.kind {
	case kindFloat:
		out := make([]float64, len(c.fs))
		for i, p := range perm {
			out[i] = c.fs[p]
		}
		c.fs = out
	case kindInt:
		out := make([]int64, len(c.is))
		for i, p := range perm {
			out[i] = c.is[p]
		}
		c.is = out
	case kindString:
		out := make([]string, len(c.ss))
		for i, p := range perm {
			out[i] = c.ss[p]
		}
		c.ss = out
	case kindBool:
		out := make([]bool, len(c.bs))
		for i, p := range perm {
			out[i] = c.bs[p]
		}
		c.bs = out
	case kindTime:
		out := make([]time.Time, len(c.ts))
		for i, p := range perm {
			out[i] = c.ts[p]
		}
		c.ts = out
	}
}

// data returns the column as the typed slice a table.Builder accepts.
func (c *column) data() interface{} {
	switch c.kind {
	case kindFloat:
		return c.fs
	case kindInt:
		return c.is
	case kindString:
		return c.ss
	case kindBool:
		return c.bs
	}
	return c.ts
}

// A frame accumulates named columns row by row before conversion to a
// go-gg table. Columns keep the order in which their names first
// appear. Cells never written stay missing.
type frame struct {
	names []string
	cols  map[string]*column
	rows  int
}

func newFrame() *frame {
	return &frame{cols: make(map[string]*column)}
}

// addRow starts the next row. The cell setters write into the row
// started last.
func (f *frame) addRow() { f.rows++ }

// col returns the named column, appending a new one of the given kind
// when the name is unknown.
func (f *frame) col(name string, kind colKind) *column {
	c, ok := f.cols[name]
	if !ok {
		c = &column{kind: kind}
		f.cols[name] = c
		f.names = append(f.names, name)
	}
	return c
}

func (f *frame) setFloat(name string, v float64) {
	c := f.col(name, kindFloat)
	c.pad(f.rows)
	c.fs[f.rows-1] = v
}

func (f *frame) setInt(name string, v int64) {
	c := f.col(name, kindInt)
	c.pad(f.rows)
	c.is[f.rows-1] = v
}

func (f *frame) setString(name, v string) {
	c := f.col(name, kindString)
	c.pad(f.rows)
	c.ss[f.rows-1] = v
}

func (f *frame) setBool(name string, v bool) {
	c := f.col(name, kindBool)
	c.pad(f.rows)
	c.bs[f.rows-1] = v
}

func (f *frame) setTime(name string, v time.Time) {
	c := f.col(name, kindTime)
	c.pad(f.rows)
	c.ts[f.rows-1] = v
}

// set stores a decoded JSON scalar. Nulls and values of unexpected
// type leave the cell missing.
func (f *frame) set(name string, v interface{}) {
	switch x := v.(type) {
	case float64:
		f.setFloat(name, x)
	case string:
		f.setString(name, x)
	case bool:
		f.setBool(name, x)
	}
}

// setIntAll fills the whole column with v, appending it if new.
func (f *frame) setIntAll(name string, v int64) {
	c := f.col(name, kindInt)
	c.pad(f.rows)
	for i := range c.is {
		c.is[i] = v
	}
}

// finish pads every column to the full row count.
func (f *frame) finish() {
	for _, c := range f.cols {
		c.pad(f.rows)
	}
}

func (f *frame) has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// floats returns the named float column padded to the row count, or
// nil when absent.
func (f *frame) floats(name string) []float64 {
	c, ok := f.cols[name]
	if !ok || c.kind != kindFloat {
		return nil
	}
	c.pad(f.rows)
	return c.fs
}

func (f *frame) strings(name string) []string {
	c, ok := f.cols[name]
	if !ok || c.kind != kindString {
		return nil
	}
	c.pad(f.rows)
	return c.ss
}

// drop removes the named column.
func (f *frame) drop(name string) {
	if _, ok := f.cols[name]; !ok {
		return
	}
	delete(f.cols, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
}

// rename keeps the column in place under its new name.
func (f *frame) rename(old, name string) {
	c, ok := f.cols[old]
	if !ok {
		return
	}
	delete(f.cols, old)
	f.cols[name] = c
	for i, n := range f.names {
		if n == old {
			f.names[i] = name
			break
		}
	}
}

// replaceString rewrites every cell equal to old.
func (f *frame) replaceString(name, old, repl string) {
	c, ok := f.cols[name]
	if !ok || c.kind != kindString {
		return
	}
	c.pad(f.rows)
	for i, s := range c.ss {
		if s == old {
			c.ss[i] = repl
		}
	}
}

// toInt converts a float column to int64 in place. Missing cells
// become zero.
func (f *frame) toInt(name string) {
	c, ok := f.cols[name]
	if !ok || c.kind != kindFloat {
		return
	}
	c.pad(f.rows)
	is := make([]int64, len(c.fs))
	for i, v := range c.fs {
		if !math.IsNaN(v) {
			is[i] = int64(v)
		}
	}
	c.kind, c.is, c.fs = kindInt, is, nil
}

// toTime parses a string column in place, trying the layouts in turn.
// Cells that parse with none of them become the zero time.
func (f *frame) toTime(name string, layouts ...string) {
	c, ok := f.cols[name]
	if !ok || c.kind != kindString {
		return
	}
	c.pad(f.rows)
	ts := make([]time.Time, len(c.ss))
	for i, s := range c.ss {
		if s != "" {
			ts[i] = parseTime(s, layouts...)
		}
	}
	c.kind, c.ts, c.ss = kindTime, ts, nil
}

// moveToFront places the given columns first, in the given order, and
// keeps the rest in their current order. Unknown names are skipped.
func (f *frame) moveToFront(names ...string) {
	head := make([]string, 0, len(f.names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if f.has(n) && !seen[n] {
			head = append(head, n)
			seen[n] = true
		}
	}
	for _, n := range f.names {
		if !seen[n] {
			head = append(head, n)
		}
	}
	f.names = head
}

// sortBy stable sorts the rows by the given columns in order of
// precedence.
func (f *frame) sortBy(names ...string) {
	f.finish()
	cols := make([]*column, 0, len(names))
	for _, n := range names {
		if c, ok := f.cols[n]; ok {
			cols = append(cols, c)
		}
	}
	perm := make([]int, f.rows)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		for _, c := range cols {
			if d := c.compare(perm[i], perm[j]); d != 0 {
				return d < 0
			}
		}
		return false
	})
	for _, c := range f.cols {
		c.reorder(perm)
	}
}

// table converts the frame to a go-gg table with the columns in frame
// order.
func (f *frame) table() *table.Table {
	f.finish()
	b := new(table.Builder)
	for _, n := range f.names {
		b.Add(n, f.cols[n].data())
	}
	return b.Done()
}
