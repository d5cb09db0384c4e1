package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Sep 2019", FormatDate("2019-09"))
	assert.Equal(t, "Jun 2023", FormatDate("2023-06-15"))
	assert.Equal(t, "someday", FormatDate("someday"))
	assert.Equal(t, "", FormatDate("  "))
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "Sep 2019 - Jun 2023", FormatPeriod("2019-09", "2023-06"))
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "Go, SQL", JoinTags([]string{" Go ", "", "SQL"}))
	assert.Equal(t, "", JoinTags(nil))
}
