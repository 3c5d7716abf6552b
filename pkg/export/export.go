package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/ersim/core/sim"
)

// RoundRow is one exported round of a named run.
type RoundRow struct {
	Run       string `json:"run"`
	Round     int    `json:"round"`
	Mode      string `json:"mode"`
	Incidents int    `json:"incidents"`
	Delta     int    `json:"delta"`
	Score     int    `json:"score"`
}

// Rows flattens the rounds of res.
func Rows(run string, res sim.Result) []RoundRow {
	rows := make([]RoundRow, 0, len(res.Rounds))
	for _, r := range res.Rounds {
		rows = append(rows, RoundRow{
			Run:       run,
			Round:     r.Round,
			Mode:      r.Mode.String(),
			Incidents: r.Incidents,
			Delta:     r.Delta,
			Score:     r.Score,
		})
	}
	return rows
}

// WriteJSON writes the rows to w in JSON format.
func WriteJSON(w io.Writer, rows []RoundRow) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}

// WriteCSV writes the rows to w in CSV format with a header line.
func WriteCSV(w io.Writer, rows []RoundRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run", "round", "mode", "incidents", "delta", "score"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Run,
			strconv.Itoa(r.Round),
			r.Mode,
			strconv.Itoa(r.Incidents),
			strconv.Itoa(r.Delta),
			strconv.Itoa(r.Score),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
