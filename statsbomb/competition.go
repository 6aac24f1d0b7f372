package statsbomb

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/juju/errors"
)

// ReadCompetition parses the StatsBomb competition file into one table
// sorted by competition and season.
func ReadCompetition(r io.Reader) (*table.Table, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Trace(err)
	}
	if len(raw) == 0 {
		return nil, errors.NotValidf("empty competition data")
	}

	f := newFrame()
	for _, obj := range raw {
		f.addRow()
		setRecord(f, obj, nil)
	}
	f.sortBy("competition_id", "season_id")

	tracer().Debugf("competition table: %d rows", f.rows)
	return f.table(), nil
}

// ReadCompetitionFile reads one competition file.
func ReadCompetitionFile(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return ReadCompetition(file)
}
