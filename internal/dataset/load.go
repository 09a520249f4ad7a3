package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet base names inside the dataset directory. Either extension works;
// CSV wins when both exist.
const (
	appearancesBase = "player_appearances"
	goalsBase       = "goals"
)

func loadAppearances(dir string) ([]Appearance, error) {
	rows, err := loadSheet(dir, appearancesBase)
	if err != nil {
		return nil, err
	}
	out := make([]Appearance, 0, len(rows.data))
	for _, r := range rows.data {
		out = append(out, Appearance{
			MatchID:      rows.get(r, "match_id"),
			MatchName:    rows.get(r, "match_name"),
			MatchDate:    rows.get(r, "match_date"),
			StageName:    rows.get(r, "stage_name"),
			TeamID:       rows.get(r, "team_id"),
			TeamName:     rows.get(r, "team_name"),
			TeamCode:     rows.get(r, "team_code"),
			PlayerID:     rows.get(r, "player_id"),
			FamilyName:   rows.get(r, "family_name"),
			GivenName:    rows.get(r, "given_name"),
			ShirtNumber:  rows.get(r, "shirt_number"),
			PositionCode: rows.get(r, "position_code"),
			Starter:      rows.get(r, "starter") == "1",
		})
	}
	return out, nil
}

func loadGoals(dir string) ([]Goal, error) {
	rows, err := loadSheet(dir, goalsBase)
	if err != nil {
		return nil, err
	}
	out := make([]Goal, 0, len(rows.data))
	for _, r := range rows.data {
		out = append(out, Goal{
			GoalID:           rows.get(r, "goal_id"),
			MatchID:          rows.get(r, "match_id"),
			MatchName:        rows.get(r, "match_name"),
			MatchDate:        rows.get(r, "match_date"),
			StageName:        rows.get(r, "stage_name"),
			TeamID:           rows.get(r, "team_id"),
			TeamName:         rows.get(r, "team_name"),
			TeamCode:         rows.get(r, "team_code"),
			HomeTeam:         rows.get(r, "home_team") == "1",
			AwayTeam:         rows.get(r, "away_team") == "1",
			PlayerID:         rows.get(r, "player_id"),
			FamilyName:       rows.get(r, "family_name"),
			GivenName:        rows.get(r, "given_name"),
			ShirtNumber:      rows.get(r, "shirt_number"),
			MinuteLabel:      rows.get(r, "minute_label"),
			MinuteRegulation: atoi(rows.get(r, "minute_regulation")),
			MinuteStoppage:   atoi(rows.get(r, "minute_stoppage")),
			MatchPeriod:      rows.get(r, "match_period"),
			OwnGoal:          rows.get(r, "own_goal") == "1",
			Penalty:          rows.get(r, "penalty") == "1",
		})
	}
	return out, nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// sheet is a header-indexed table. Lookup by column name keeps the loader
// independent of column order across dataset exports.
type sheet struct {
	cols map[string]int
	data [][]string
}

func (s *sheet) get(row []string, col string) string {
	i, ok := s.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func loadSheet(dir, base string) (*sheet, error) {
	csvPath := filepath.Join(dir, base+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, base, err)
		}
		defer f.Close()
		return parseCSV(f, base)
	}

	xlsxPath := filepath.Join(dir, base+".xlsx")
	if _, err := os.Stat(xlsxPath); err == nil {
		return parseXLSX(xlsxPath, base)
	}

	return nil, fmt.Errorf("%w: neither %s.csv nor %s.xlsx found in %s", ErrUnavailable, base, base, dir)
}

func parseCSV(r io.Reader, base string) (*sheet, error) {
	br := bufio.NewReader(r)
	// Peek the header line to sniff the delimiter, then put it back.
	line, _ := br.ReadString('\n')
	rest := io.MultiReader(strings.NewReader(line), br)

	reader := csv.NewReader(rest)
	reader.FieldsPerRecord = -1
	if strings.Count(line, ";") > strings.Count(line, ",") {
		reader.Comma = ';'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s.csv: %v", ErrUnavailable, base, err)
	}
	return buildSheet(rows, base)
}

func parseXLSX(path, base string) (*sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s.xlsx: %v", ErrUnavailable, base, err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("%w: %s.xlsx has no sheets", ErrUnavailable, base)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s.xlsx: %v", ErrUnavailable, base, err)
	}
	return buildSheet(rows, base)
}

func buildSheet(rows [][]string, base string) (*sheet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrUnavailable, base)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(strings.TrimSpace(strings.Join(row, ""))) == 0 {
			continue
		}
		data = append(data, row)
	}
	return &sheet{cols: cols, data: data}, nil
}
