package bill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBillDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "calendar_date",
			input:    "2024-01-15",
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "rfc3339_with_offset",
			input:    "2024-01-15T08:30:00+07:00",
			expected: time.Date(2024, 1, 15, 1, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "timestamp_without_zone",
			input:    "2024-01-15T08:30:00",
			expected: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "day_first",
			input: "15/01/2024",
		},
		{
			name:  "impossible_date",
			input: "2024-02-30",
		},
		{
			name:  "garbage",
			input: "yesterday",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseBillDate(tc.input)

			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.expected.Equal(got), "got %s", got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestParseForm_TodayIsNotFuture(t *testing.T) {
	b := &business{clock: testClock()}

	form := validForm()
	form.BillDate = testNow.Format(time.RFC3339)

	fields, err := b.parseForm(form)

	assert.NoError(t, err)
	assert.True(t, testNow.Equal(fields.billDate))
}
