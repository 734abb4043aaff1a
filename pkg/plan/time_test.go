package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 570, TimeToMinutes("09:30"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
	assert.Equal(t, 0, TimeToMinutes("garbage"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestTimeRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m += 17 {
		assert.Equal(t, m, TimeToMinutes(MinutesToTime(m)))
	}
}

func TestAddHours(t *testing.T) {
	assert.Equal(t, "11:00", AddHours("09:00", 2))
	assert.Equal(t, "10:30", AddHours("09:00", 1.5))
	assert.Equal(t, "09:45", AddHours("09:00", 0.75))
}

func TestAddHoursWrapsMidnight(t *testing.T) {
	assert.Equal(t, "01:00", AddHours("23:00", 2))
	assert.Equal(t, "22:00", AddHours("01:00", -3))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatTime("00:00"))
	assert.Equal(t, "9:30 AM", FormatTime("09:30"))
	assert.Equal(t, "12:15 PM", FormatTime("12:15"))
	assert.Equal(t, "11:59 PM", FormatTime("23:59"))
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots("09:00", "11:00")
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
