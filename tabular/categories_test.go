package tabular

import (
	"testing"

	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCategories(t *testing.T) {
	c := DefaultCategories()

	assert.Equal(t, 32, c.Len())
	assert.Equal(t, "Music", c.Name("10"))
	assert.Equal(t, "Science & Technology", c.Name("28"))
	assert.Equal(t, "", c.Name("999"))
}

func TestWithLiveOverridesStaticTable(t *testing.T) {
	c := WithLive([]youtube.Category{
		{ID: "10", Title: "Musik"},
		{ID: "50", Title: "New Category"},
		{ID: "", Title: "ignored"},
		{ID: "1", Title: ""},
	})

	assert.Equal(t, "Musik", c.Name("10"))
	assert.Equal(t, "New Category", c.Name("50"))
	assert.Equal(t, "Film & Animation", c.Name("1"))

	// the static table itself is untouched
	assert.Equal(t, "Music", DefaultCategories().Name("10"))
}

func TestNilCategories(t *testing.T) {
	var c *Categories
	assert.Equal(t, "", c.Name("10"))
	assert.Equal(t, 0, c.Len())
}
