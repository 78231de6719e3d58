package memRepos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctgapi/models"
)

func testDetails() map[int32]models.Detail {
	return map[int32]models.Detail{
		2:  models.Detail(`{"origin":"United States"}`),
		3:  models.Detail(`{"origin":"United States","players":5}`),
		10: models.Detail(`["Test","ODI","T20"]`),
	}
}

func TestDetailAll(t *testing.T) {
	dtl := NewDetail(testDetails())

	assert.Equal(t, 3, dtl.Len())
	assert.Equal(t, testDetails(), dtl.All())
}

func TestDetailAllReturnsCopy(t *testing.T) {
	dtl := NewDetail(testDetails())

	all := dtl.All()
	delete(all, 2)
	all[3][0] = 'X'

	assert.Equal(t, testDetails(), dtl.All())
}

func TestDetailByKey(t *testing.T) {
	dtl := NewDetail(testDetails())
	all := dtl.All()

	for id := range all {
		detail, ok := dtl.ByKey(id)
		require.True(t, ok)
		assert.Equal(t, map[int32]models.Detail{id: all[id]}, detail)
	}

	_, ok := dtl.ByKey(25)
	assert.False(t, ok)
}
