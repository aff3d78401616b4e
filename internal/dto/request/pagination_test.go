package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	page := PageRequest{Page: -2, Size: 0}
	page.Normalize(100)

	assert.Equal(t, 0, page.Page)
	assert.Equal(t, defaultPageSize, page.Size)
}

func TestNormalizeClampsToMax(t *testing.T) {
	page := PageRequest{Size: 5000}
	page.Normalize(100)

	assert.Equal(t, 100, page.Size)
}

func TestNormalizeKeepsValidInput(t *testing.T) {
	page := PageRequest{Page: 2, Size: 25, SortBy: "rating"}
	page.Normalize(100)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 25, page.Size)
}

func TestOffsetIsPageTimesSize(t *testing.T) {
	page := PageRequest{Page: 3, Size: 20}
	assert.Equal(t, 60, page.Offset())
}
