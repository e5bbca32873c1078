package app

import (
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// JSON encodes the report with indentation for terminal output.
func (r DemoReport) JSON() ([]byte, error) {
	out, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode demo report")
	}
	return out, nil
}

// Table renders the leaderboard as fixed width text.
func (r DemoReport) Table() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeRow := func(cols ...string) {
		for i, col := range cols {
			if i > 0 {
				_ = buf.WriteByte(' ')
			}
			_, _ = buf.WriteString(padRight(col, columnWidths[i]))
		}
		_ = buf.WriteByte('\n')
	}

	_, _ = buf.WriteString("season " + r.Season + " after " + strconv.Itoa(len(r.Gameweeks)) + " gameweek(s)\n")
	writeRow("rank", "user", "total", "played", "avg", "best", "worst")
	for _, entry := range r.Leaderboard {
		writeRow(
			strconv.Itoa(entry.Rank),
			entry.UserID,
			strconv.FormatFloat(entry.TotalPoints, 'f', 1, 64),
			strconv.Itoa(entry.GameweeksPlayed),
			strconv.FormatFloat(entry.AveragePoints, 'f', 2, 64),
			strconv.Itoa(entry.BestRank),
			strconv.Itoa(entry.WorstRank),
		)
	}
	return buf.String()
}

var columnWidths = []int{4, 12, 8, 6, 7, 4, 5}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
