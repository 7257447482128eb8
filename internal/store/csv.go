package store

import (
	"sort"
	"strconv"
	"strings"
)

// CSVHeader is the export header row: Date, Category, Amount, Memo.
const CSVHeader = "日付,カテゴリ,金額,メモ"

// memoCommaSubstitute replaces literal commas inside memos. Single-character
// substitution instead of quoting keeps rows structurally flat.
const memoCommaSubstitute = "、"

// CSV renders the collection as comma-delimited UTF-8 text: the header,
// then one row per record in chronological order. The sort runs over a
// defensive copy; the live insertion order is never touched. No trailing
// newline.
func (s *Store) CSV() string {
	records := s.Records()
	if len(records) == 0 {
		return CSVHeader
	}

	// Stable, so same-date records keep their relative order
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortKey().Before(records[j].SortKey())
	})

	var b strings.Builder
	b.WriteString(CSVHeader)
	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(r.Date)
		b.WriteByte(',')
		b.WriteString(r.Category)
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(r.Amount, 10))
		b.WriteByte(',')
		b.WriteString(strings.ReplaceAll(r.Memo, ",", memoCommaSubstitute))
	}
	return b.String()
}
