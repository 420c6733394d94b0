package tracks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsetChain(t *testing.T) {
	tbl := NewTable()
	for _, id := range tbl.Common().IDs() {
		assert.True(t, tbl.Supported().Has(id), "common id %d not supported", id)
	}
	for _, id := range tbl.Supported().IDs() {
		assert.True(t, tbl.All().Has(id), "supported id %d not in table", id)
		s, _ := tbl.Supported().Lookup(id)
		a, _ := tbl.All().Lookup(id)
		assert.Equal(t, a, s)
	}
	assert.Equal(t, len(SupportedIDs), tbl.Supported().Len())
	assert.Equal(t, len(CommonIDs), tbl.Common().Len())
}

func TestUnsupportedLanes(t *testing.T) {
	tbl := NewTable()
	for _, id := range []int{5, 14, 15, 100, 1000} {
		tr, ok := tbl.All().Lookup(id)
		require.True(t, ok, "id %d", id)
		assert.Equal(t, Unsupported, tr.Kind)
		assert.False(t, tbl.Supported().Has(id))
	}
	for _, id := range tbl.Supported().IDs() {
		tr, _ := tbl.Supported().Lookup(id)
		assert.NotEqual(t, Unsupported, tr.Kind, "id %d", id)
	}
}

func TestClassification(t *testing.T) {
	all := NewTable().All()
	tr, _ := all.Lookup(2)
	assert.Equal(t, Track{Kind: Light, Side: SideLeft, Label: "Left laser"}, tr)
	tr, _ = all.Lookup(8)
	assert.Equal(t, Trigger, tr.Kind)
	assert.Equal(t, SideNone, tr.Side)
	tr, _ = all.Lookup(13)
	assert.Equal(t, Value, tr.Kind)
	assert.Equal(t, SideRight, tr.Side)
}

func TestViewsAreIsolated(t *testing.T) {
	tbl := NewTable()
	m := tbl.All().Map()
	delete(m, 0)
	m[42] = Track{Kind: Light}
	assert.True(t, tbl.All().Has(0))
	assert.False(t, tbl.All().Has(42))

	other := NewTable()
	assert.Equal(t, tbl.All().IDs(), other.All().IDs())
}

func TestVisibleRows(t *testing.T) {
	tbl := NewTable()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 8, 9, 12, 13}, tbl.Visible(false).IDs())
	assert.Equal(t, SupportedIDs, tbl.Visible(true).IDs())

	groups := tbl.Common().BySide()
	assert.Equal(t, []int{2, 12}, groups[SideLeft])
	assert.Equal(t, []int{3, 13}, groups[SideRight])
	assert.Equal(t, []int{0, 1, 4, 8, 9}, groups[SideNone])
}

func TestProjectPanicsOnMissingID(t *testing.T) {
	assert.Panics(t, func() {
		project(authored(), []int{0, 999})
	})
}

func TestConcurrentReads(t *testing.T) {
	tbl := NewTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range tbl.Supported().IDs() {
				_, ok := tbl.All().Lookup(id)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
