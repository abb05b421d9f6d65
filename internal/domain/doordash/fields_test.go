package doordash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dtchiong/order-printer/internal/domain/order"
)

func TestSplitAnyKeepEmpty(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		delims string
		want   []string
	}{
		{
			name:   "comma space keeps empty token",
			input:  "Sep 19, 2019",
			delims: " ,",
			want:   []string{"Sep", "19", "", "2019"},
		},
		{
			name:   "space colon",
			input:  "Bob Y Today at 09:09PM",
			delims: " :",
			want:   []string{"Bob", "Y", "Today", "at", "09", "09PM"},
		},
		{
			name:   "no delimiters",
			input:  "plain",
			delims: " ,",
			want:   []string{"plain"},
		},
		{
			name:   "empty input",
			input:  "",
			delims: " ,",
			want:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAnyKeepEmpty(tt.input, tt.delims))
		})
	}
}

func TestParsePickUpTime(t *testing.T) {
	tests := []struct {
		name     string
		timeLine string
		dateLine string
		want     time.Time
		warns    int
	}{
		{
			name:     "evening PM",
			timeLine: "Bob Y Today at 09:09PM",
			dateLine: "1-(855) 973-1040 Sep 19, 2019",
			want:     time.Date(2019, time.September, 19, 21, 9, 0, 0, time.Local),
		},
		{
			name:     "noon stays twelve",
			timeLine: "Dana S Today at 12:30PM",
			dateLine: "(555) 111-2222 Oct 2, 2019",
			want:     time.Date(2019, time.October, 2, 12, 30, 0, 0, time.Local),
		},
		{
			name:     "morning AM",
			timeLine: "Alex C Today at 11:05AM",
			dateLine: "(555) 999-8888 Jan 3, 2020",
			want:     time.Date(2020, time.January, 3, 11, 5, 0, 0, time.Local),
		},
		{
			name:     "garbled date warns",
			timeLine: "Bob Y Today at 09:09PM",
			dateLine: "no date here at all",
			warns:    1,
		},
		{
			name:     "garbled time warns",
			timeLine: "??",
			dateLine: "(555) 111-2222 Oct 2, 2019",
			warns:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o order.Order
			var warns order.Warnings
			parsePickUpTime(tt.timeLine, tt.dateLine, &o, &warns)

			assert.Len(t, warns, tt.warns)
			if tt.warns == 0 {
				assert.Equal(t, tt.want, o.PickUpTime)
			} else {
				assert.True(t, o.PickUpTime.IsZero(), "failed parse should leave the zero time")
			}
		})
	}
}

func TestParseContactNumber(t *testing.T) {
	t.Run("extracts number prefix", func(t *testing.T) {
		var o order.Order
		var warns order.Warnings
		parseContactNumber("1-(855) 973-1040 Sep 19, 2019", &o, &warns)
		assert.Equal(t, "1-(855) 973-1040", o.ContactNumber)
		assert.Empty(t, warns)
	})

	t.Run("miss sets sentinel", func(t *testing.T) {
		var o order.Order
		var warns order.Warnings
		parseContactNumber("no phone here", &o, &warns)
		assert.Equal(t, "Error", o.ContactNumber)
		assert.Len(t, warns, 1)
	})
}

func TestParseLabelName(t *testing.T) {
	name, ok := parseLabelName("Please label: Dana (2 item)")
	assert.True(t, ok)
	assert.Equal(t, "Dana", name)

	_, ok = parseLabelName("Please label:")
	assert.False(t, ok)
}
