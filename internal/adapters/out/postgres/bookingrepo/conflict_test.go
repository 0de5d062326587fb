package bookingrepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConflictDetail(t *testing.T) {
	detail := `Key (dock_id, tstzrange(booking_start, booking_end, '[]'::text))=` +
		`(3, ["2030-01-01 08:00:00+00","2030-01-01 12:00:00+00")) conflicts with existing key ` +
		`(dock_id, tstzrange(booking_start, booking_end, '[]'::text))=` +
		`(3, ["2030-01-01 07:00:00+00","2030-01-01 09:00:00+00")).`

	start, end, ok := parseConflictDetail(detail)
	require.True(t, ok)

	assert.Equal(t, time.Date(2030, 1, 1, 7, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC), end.UTC())
}

func TestParseConflictDetail_OffsetWithMinutes(t *testing.T) {
	detail := `Key (...)=(3, ["2030-06-01 08:00:00+05:30","2030-06-01 12:00:00+05:30")) ` +
		`conflicts with existing key (...)=(3, ["2030-06-01 07:00:00+05:30","2030-06-01 09:00:00+05:30")).`

	start, end, ok := parseConflictDetail(detail)
	require.True(t, ok)
	assert.Equal(t, time.Date(2030, 6, 1, 1, 30, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2030, 6, 1, 3, 30, 0, 0, time.UTC), end.UTC())
}

func TestParseConflictDetail_Unparsable(t *testing.T) {
	_, _, ok := parseConflictDetail("duplicate key value violates unique constraint")
	assert.False(t, ok)

	_, _, ok = parseConflictDetail(`only one range ["2030-01-01 08:00:00+00","2030-01-01 12:00:00+00")`)
	assert.False(t, ok)
}
