package playertable

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/diamondtrends/internal/domain/player"
)

const (
	columnName = "playername"
	columnID   = "mlbid"
)

var (
	teamColumns     = []string{"team"}
	positionColumns = []string{"pos", "position"}
)

// Table is the parsed identity table. Names lists every distinct non-blank
// name in row order, including rows that carry no usable MLBID.
type Table struct {
	Players []player.Player
	Names   []string
}

// LoadFile reads the player identity table from a CSV file.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "open player table %s", path)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return Table{}, errors.Wrapf(err, "parse player table %s", path)
	}
	return table, nil
}

// Parse reads a CSV with a header row. Rows without a name or a numeric
// MLBID are left out of Players; a repeated id keeps its first row.
func Parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, errors.New("player table is empty")
		}
		return Table{}, errors.Wrap(err, "read header")
	}

	index := headerIndex(header)
	nameCol, ok := index[columnName]
	if !ok {
		return Table{}, errors.Newf("missing %s column", strings.ToUpper(columnName))
	}
	idCol, ok := index[columnID]
	if !ok {
		return Table{}, errors.Newf("missing %s column", strings.ToUpper(columnID))
	}
	teamCol := firstColumn(index, teamColumns)
	positionCol := firstColumn(index, positionColumns)

	out := make([]player.Player, 0, 4096)
	names := make([]string, 0, 4096)
	seenIDs := make(map[int64]struct{}, 4096)
	seenNames := make(map[string]struct{}, 4096)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, errors.Wrap(err, "read row")
		}

		name := field(record, nameCol)
		if name == "" {
			continue
		}
		if _, dup := seenNames[name]; !dup {
			seenNames[name] = struct{}{}
			names = append(names, name)
		}

		id, ok := parseID(field(record, idCol))
		if !ok {
			continue
		}
		if _, dup := seenIDs[id]; dup {
			continue
		}
		seenIDs[id] = struct{}{}

		position := field(record, positionCol)
		out = append(out, player.Player{
			ID:       id,
			Name:     name,
			Team:     field(record, teamCol),
			Position: position,
			Roles:    player.RolesFromPosition(position),
		})
	}

	return Table{Players: out, Names: names}, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func firstColumn(index map[string]int, candidates []string) int {
	for _, c := range candidates {
		if i, ok := index[c]; ok {
			return i
		}
	}
	return -1
}

func field(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[col])
}

// parseID accepts integer ids and the float form spreadsheets export ("592450.0").
func parseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, v > 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f <= 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
