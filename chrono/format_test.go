package chrono_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzbridge/chrono"
	"tzbridge/shared/failure"
	"tzbridge/tz"
)

func TestFormatParse_RoundTrip(t *testing.T) {
	instant := time.Date(2024, time.March, 10, 2, 30, 15, 0, time.UTC)

	const layout = "2006-01-02 15:04:05"

	rendered := chrono.Format(layout, instant)
	assert.Equal(t, "2024-03-10 02:30:15", rendered)

	parsed, err := chrono.Parse(layout, rendered)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}

func TestParse_Malformed(t *testing.T) {
	_, err := chrono.Parse("2006-01-02", "not a date")
	assert.Error(t, err)
}

func TestParseInZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	parsed, err := chrono.ParseInZone("2006-01-02 15:04:05", "2024-06-01 12:00:00", loc)
	require.NoError(t, err)

	assert.Equal(t, loc, parsed.Location())
	assert.True(t, parsed.Equal(time.Date(2024, time.June, 1, 16, 0, 0, 0, time.UTC)))

	_, err = chrono.ParseInZone("2006-01-02", "2024-06-01", nil)
	assert.Equal(t, failure.KindNullZone, failure.GetKind(err))
}

func TestParseLocal(t *testing.T) {
	lt, err := chrono.ParseLocal("2006-01-02 15:04:05", "2024-03-10 02:30:00")
	require.NoError(t, err)

	assert.True(t, lt.Equal(tz.NewLocalTime(2024, time.March, 10, 2, 30, 0, 0)))
}

func TestFormatLocal(t *testing.T) {
	lt := tz.NewLocalTime(2024, time.March, 10, 2, 30, 0, 0)

	assert.Equal(t, "2024-03-10 02:30:00", chrono.FormatLocal("2006-01-02 15:04:05", lt))
}

func TestFormatZoned(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	zt, err := chrono.NewZonedAt(loc, time.Date(2024, time.June, 1, 16, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01 12:00:00", chrono.FormatZoned("2006-01-02 15:04:05", zt))
}

func TestStrftime(t *testing.T) {
	instant := time.Date(2024, time.March, 10, 2, 30, 15, 0, time.UTC)

	rendered, err := chrono.Strftime("%Y-%m-%d %H:%M:%S", instant)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10 02:30:15", rendered)
}

func TestStrptime(t *testing.T) {
	parsed, err := chrono.Strptime("%Y-%m-%d %H:%M:%S", "2024-03-10 02:30:15")
	require.NoError(t, err)

	year, month, day := parsed.Date()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)
	assert.Equal(t, 10, day)

	hour, min, sec := parsed.Clock()
	assert.Equal(t, 2, hour)
	assert.Equal(t, 30, min)
	assert.Equal(t, 15, sec)
}

func TestNewZonedConstructors(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	epoch, err := chrono.NewZoned(loc)
	require.NoError(t, err)
	assert.True(t, epoch.SysTime().Equal(time.Unix(0, 0)))
	assert.Equal(t, loc, epoch.Zone())

	instant := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	at, err := chrono.NewZonedAt(loc, instant)
	require.NoError(t, err)
	assert.True(t, at.SysTime().Equal(instant))

	local, err := chrono.NewZonedLocal(loc, tz.NewLocalTime(2024, time.June, 1, 7, 0, 0, 0), tz.ChooseEarliest)
	require.NoError(t, err)
	assert.True(t, local.SysTime().Equal(instant))

	_, err = chrono.NewZonedAt(nil, instant)
	assert.Equal(t, failure.KindNullZone, failure.GetKind(err))
}

func TestNewZonedNamed(t *testing.T) {
	instant := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	zt, err := chrono.NewZonedNamed("Asia/Jakarta", instant)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", zt.Zone().String())

	_, err = chrono.NewZonedNamed("Not/AZone", instant)
	assert.True(t, failure.IsZoneNotFound(err))
}

func TestStrftimeZoned(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	instant := time.Date(2024, time.June, 1, 16, 0, 0, 0, time.UTC).In(loc)

	rendered, err := chrono.Strftime("%Y-%m-%d %H:%M", instant)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 12:00", rendered)
}
