package statsbomb

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
)

// ReadLineup parses a StatsBomb lineup file into a table with one row
// per player, sorted by player id. matchID tags every row;
// ReadLineupFile derives it from the file name.
func ReadLineup(r io.Reader, matchID int64) (*table.Table, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Trace(err)
	}
	if len(raw) == 0 {
		return nil, errors.NotValidf("empty lineup data")
	}

	f := newFrame()
	f.col("team_id", kindFloat)
	f.col("team_name", kindString)
	f.col("match_id", kindInt)
	for _, team := range raw {
		teamID, _ := team["team_id"].(float64)
		teamName, _ := team["team_name"].(string)
		players, _ := team["lineup"].([]interface{})
		for _, p := range players {
			obj, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			f.addRow()
			f.setFloat("team_id", teamID)
			f.setString("team_name", teamName)
			f.setInt("match_id", matchID)
			setObject(f, "player", obj, nil)
		}
	}
	f.toInt("player_id")
	f.sortBy("player_id")

	tracer().Debugf("lineup table for match %d: %d players", matchID, f.rows)
	return f.table(), nil
}

// ReadLineupFile reads one lineup file, taking the match id from the
// file name.
func ReadLineupFile(path string) (*table.Table, error) {
	matchID, err := matchIDFromPath(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return ReadLineup(file, matchID)
}
