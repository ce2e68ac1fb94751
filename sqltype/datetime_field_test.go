package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPrecision(t *testing.T) {
	tests := []struct {
		precision uint8
		want      DateTimeField
	}{
		{0, Second}, {2, Second},
		{3, Millisecond}, {5, Millisecond},
		{6, Microsecond}, {8, Microsecond},
		{9, Nanosecond}, {12, Nanosecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromPrecision(tt.precision), "precision %d", tt.precision)
	}
}

func TestDateTimeFieldFromWordCaseInsensitive(t *testing.T) {
	f, ok := dateTimeFieldFromWord("second")
	assert.True(t, ok)
	assert.Equal(t, Second, f)

	_, ok = dateTimeFieldFromWord("fortnight")
	assert.False(t, ok)
}
