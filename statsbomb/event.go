package statsbomb

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
)

// EventTables holds the tables extracted from one event file.
type EventTables struct {
	// Event has one row per event with nested objects flattened.
	Event *table.Table
	// RelatedEvent links events pairwise, one row per direction.
	RelatedEvent *table.Table
	// FreezeFrame has one row per player frozen at a shot.
	FreezeFrame *table.Table
	// TacticsLineup has one row per player in a lineup event.
	TacticsLineup *table.Table
}

// eventCols are the leading event table columns. Everything else
// follows in order of first appearance.
var eventCols = []string{
	"match_id", "id", "index", "period", "timestamp_minute",
	"timestamp_second", "timestamp_millisecond", "minute", "second",
	"type_id", "type_name", "outcome_id", "outcome_name",
	"play_pattern_id", "play_pattern_name", "possession_team_id",
	"possession", "possession_team_name", "team_id", "team_name",
	"player_id", "player_name", "position_id", "position_name",
	"duration", "x", "y", "pass_end_x", "pass_end_y", "carry_end_x",
	"carry_end_y", "shot_end_x", "shot_end_y", "shot_end_z",
	"goalkeeper_end_x", "goalkeeper_end_y", "body_part_id",
	"body_part_name",
}

// ReadEvent parses a StatsBomb event file into four columnar tables:
// the events themselves, the links between related events, the shot
// freeze frames and the tactics lineups. Events are sorted
// chronologically, timestamps are split into integer parts, locations
// into x/y(/z) columns, and the outcome, body part and aerial duel
// columns of the different event types are each merged into one.
// matchID tags every row of every table; ReadEventFile derives it from
// the file name.
func ReadEvent(r io.Reader, matchID int64) (*EventTables, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Trace(err)
	}
	if len(raw) == 0 {
		return nil, errors.NotValidf("empty event data")
	}

	type event struct {
		obj                        map[string]interface{}
		ts                         timeParts
		minute, second, possession float64
	}
	events := make([]event, len(raw))
	for i, obj := range raw {
		ev := event{obj: obj}
		if s, ok := obj["timestamp"].(string); ok {
			ev.ts = parseTimestamp(s)
		}
		ev.minute, _ = obj["minute"].(float64)
		ev.second, _ = obj["second"].(float64)
		ev.possession, _ = obj["possession"].(float64)
		events[i] = ev
	}
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.minute != b.minute {
			return a.minute < b.minute
		}
		if a.second != b.second {
			return a.second < b.second
		}
		if a.ts.minute != b.ts.minute {
			return a.ts.minute < b.ts.minute
		}
		if a.ts.second != b.ts.second {
			return a.ts.second < b.ts.second
		}
		if a.ts.millisecond != b.ts.millisecond {
			return a.ts.millisecond < b.ts.millisecond
		}
		return a.possession < b.possession
	})

	f := newFrame()
	rowLists := make([]map[string][]interface{}, len(events))
	for i, ev := range events {
		f.addRow()
		delete(ev.obj, "timestamp")
		lists := make(map[string][]interface{})
		setRecord(f, ev.obj, lists)
		f.setInt("timestamp_minute", ev.ts.minute)
		f.setInt("timestamp_second", ev.ts.second)
		f.setInt("timestamp_millisecond", ev.ts.millisecond)
		f.setInt("match_id", matchID)
		rowLists[i] = lists
	}

	splitLocation(f, rowLists, "location", "x", "y")
	splitLocation(f, rowLists, "pass_end_location", "pass_end_x", "pass_end_y")
	splitLocation(f, rowLists, "carry_end_location", "carry_end_x", "carry_end_y")
	splitLocation(f, rowLists, "shot_end_location", "shot_end_x", "shot_end_y", "shot_end_z")
	splitLocation(f, rowLists, "goalkeeper_end_location", "goalkeeper_end_x", "goalkeeper_end_y")

	// The receipt type carries an odd asterisk.
	f.replaceString("type_name", "Ball Receipt*", "Ball Receipt")

	// Outcome, body part and aerial duel info comes out of the nested
	// objects under a prefix per event type. Collapse each group into
	// one column.
	mergeCols(f, "outcome_id")
	mergeCols(f, "outcome_name")
	mergeCols(f, "body_part_id")
	mergeCols(f, "body_part_name")
	mergeCols(f, "aerial_won")

	related := relatedEvents(f, rowLists, matchID)
	freeze := freezeFrames(f, rowLists, matchID)
	tactics := tacticsLineups(f, rowLists, matchID)

	f.moveToFront(eventCols...)

	tracer().Debugf("match %d: %d events, %d related, %d freeze frame, %d lineup rows",
		matchID, f.rows, related.rows, freeze.rows, tactics.rows)
	return &EventTables{
		Event:         f.table(),
		RelatedEvent:  related.table(),
		FreezeFrame:   freeze.table(),
		TacticsLineup: tactics.table(),
	}, nil
}

// ReadEventFile reads one event file, taking the match id from the
// file name.
func ReadEventFile(path string) (*EventTables, error) {
	matchID, err := matchIDFromPath(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return ReadEvent(file, matchID)
}

// relatedEvents builds the link table between events. Links are listed
// in both directions even when only one of the two events names the
// other, and the type and index of both ends are joined on for easier
// lookups. Ends that reference an event missing from the file keep a
// missing type and index.
func relatedEvents(f *frame, rowLists []map[string][]interface{}, matchID int64) *frame {
	ids := f.strings("id")
	typeName := f.strings("type_name")
	index := f.floats("index")
	byID := make(map[string]int, len(ids))
	for i, id := range ids {
		byID[id] = i
	}

	type link struct{ id, related string }
	var links []link
	explode(rowLists, "related_events", func(row, _ int, v interface{}) {
		if rel, ok := v.(string); ok {
			links = append(links, link{ids[row], rel})
		}
	})
	n := len(links)
	for i := 0; i < n; i++ {
		links = append(links, link{links[i].related, links[i].id})
	}

	rf := newFrame()
	rf.col("id", kindString)
	rf.col("id_related", kindString)
	rf.col("type_name", kindString)
	rf.col("index", kindFloat)
	rf.col("type_name_related", kindString)
	rf.col("index_related", kindFloat)
	rf.col("match_id", kindInt)
	seen := make(map[link]bool, len(links))
	for _, l := range links {
		if seen[l] {
			continue
		}
		seen[l] = true
		rf.addRow()
		rf.setString("id", l.id)
		rf.setString("id_related", l.related)
		if i, ok := byID[l.id]; ok {
			rf.setString("type_name", typeName[i])
			rf.setFloat("index", index[i])
		}
		if i, ok := byID[l.related]; ok {
			rf.setString("type_name_related", typeName[i])
			rf.setFloat("index_related", index[i])
		}
		rf.setInt("match_id", matchID)
	}
	return rf
}

// freezeFrames builds one row per player captured in a shot freeze
// frame, keyed by the shot event id and the 1 based position within
// the frame.
func freezeFrames(f *frame, rowLists []map[string][]interface{}, matchID int64) *frame {
	ids := f.strings("id")
	ff := newFrame()
	ff.col("id", kindString)
	ff.col("event_freeze_id", kindInt)
	var frameLists []map[string][]interface{}
	explode(rowLists, "shot_freeze_frame", func(row, pos int, v interface{}) {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return
		}
		ff.addRow()
		ff.setString("id", ids[row])
		ff.setInt("event_freeze_id", int64(pos))
		lists := make(map[string][]interface{})
		setObject(ff, "player", obj, lists)
		frameLists = append(frameLists, lists)
	})
	splitLocation(ff, frameLists, "player_location", "x", "y")
	ff.setIntAll("match_id", matchID)
	return ff
}

// tacticsLineups builds one row per player in a tactics lineup, keyed
// by the event id and the 1 based position within the lineup.
func tacticsLineups(f *frame, rowLists []map[string][]interface{}, matchID int64) *frame {
	ids := f.strings("id")
	tf := newFrame()
	tf.col("id", kindString)
	tf.col("event_tactics_id", kindInt)
	explode(rowLists, "tactics_lineup", func(row, pos int, v interface{}) {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return
		}
		tf.addRow()
		tf.setString("id", ids[row])
		tf.setInt("event_tactics_id", int64(pos))
		setObject(tf, "player", obj, nil)
	})
	tf.setIntAll("match_id", matchID)
	return tf
}
