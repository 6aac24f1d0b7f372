package statsbomb

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
)

// matchTimeLayouts cover the date and datetime formats found in match
// files. Fractional seconds parse with any of them.
var matchTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadMatch parses a StatsBomb match file into one table with a row
// per match. The nested competition, season, team, stadium, referee
// and manager objects are flattened, the kick off date and time are
// combined into one column, the redundant away gender column and the
// match status are dropped, and rows are sorted by kick off.
func ReadMatch(r io.Reader) (*table.Table, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Trace(err)
	}
	if len(raw) == 0 {
		return nil, errors.NotValidf("empty match data")
	}

	f := newFrame()
	for _, obj := range raw {
		f.addRow()
		matchDate, _ := obj["match_date"].(string)
		kickOff, _ := obj["kick_off"].(string)
		lastUpdated, _ := obj["last_updated"].(string)
		delete(obj, "match_date")
		delete(obj, "kick_off")
		delete(obj, "last_updated")
		lists := make(map[string][]interface{})
		setRecord(f, obj, lists)
		f.setTime("match_date", parseTime(matchDate, matchTimeLayouts...))
		f.setTime("kick_off", parseTime(matchDate+" "+kickOff, matchTimeLayouts...))
		f.setTime("last_updated", parseTime(lastUpdated, matchTimeLayouts...))

		// The managers field is a single element list.
		for _, col := range []string{"home_team_managers", "away_team_managers"} {
			if l := lists[col]; len(l) > 0 {
				if mgr, ok := l[0].(map[string]interface{}); ok {
					setObject(f, col, mgr, nil)
				}
			}
		}
	}

	// Both teams always share one gender, and finished matches are
	// always available.
	f.drop("away_team_gender")
	f.drop("match_status")
	f.rename("home_team_gender", "competition_gender")
	f.toTime("home_team_managers_dob", "2006-01-02")
	f.toTime("away_team_managers_dob", "2006-01-02")
	for _, col := range []string{"competition_id", "season_id", "home_team_id", "competition_stage_id"} {
		f.toInt(col)
	}
	f.sortBy("kick_off")

	tracer().Debugf("match table: %d rows, %d columns", f.rows, len(f.names))
	return f.table(), nil
}

// ReadMatchFile reads one match file.
func ReadMatchFile(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return ReadMatch(file)
}
