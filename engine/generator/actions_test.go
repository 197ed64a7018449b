package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActions(t *testing.T) {
	t.Run("Should return the read-only set without write actions", func(t *testing.T) {
		assert.Equal(t, []string{"list", "filter", "show"}, Actions(false))
	})
	t.Run("Should return the full set with write actions", func(t *testing.T) {
		assert.Equal(t, []string{"list", "filter", "show", "new", "edit", "delete"}, Actions(true))
	})
	t.Run("Should return a copy callers may mutate", func(t *testing.T) {
		a := Actions(false)
		a[0] = "mutated"
		assert.Equal(t, []string{"list", "filter", "show"}, Actions(false))
	})
}

func TestRecordActions(t *testing.T) {
	t.Run("Should keep show and edit in order", func(t *testing.T) {
		assert.Equal(t, []string{"show", "edit"}, RecordActions(Actions(true)))
	})
	t.Run("Should keep only show for the read-only set", func(t *testing.T) {
		assert.Equal(t, []string{"show"}, RecordActions(Actions(false)))
	})
	t.Run("Should return nil for an empty set", func(t *testing.T) {
		assert.Nil(t, RecordActions(nil))
	})
}
