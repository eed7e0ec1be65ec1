package metrics

import (
	"testing"

	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/stretchr/testify/assert"
)

func TestCommentTerms(t *testing.T) {
	table := model.NewTable([]model.CommentRecord{
		{TextOriginal: "Great video!! 10/10, LOVED it."},
		{TextOriginal: "Ünïcode & stuff"},
	})

	assert.Equal(t, []string{"great", "video", "10", "10", "loved", "it", "n", "code", "stuff"}, CommentTerms(table))
}

func TestTagTerms(t *testing.T) {
	table := model.NewTable([]model.VideoRecord{
		{Tags: []string{"machine learning", "Go"}},
		{},
		{Tags: []string{"go"}},
	})

	assert.Equal(t, []string{"MACHINE", "LEARNING", "GO", "GO"}, TagTerms(table))
}

func TestTopTerms(t *testing.T) {
	terms := []string{"go", "the", "GO", "go", "rust", "zig", "rust", "THE", "and"}

	assert.Equal(t, []model.TermCount{
		{Term: "go", Count: 2},
		{Term: "rust", Count: 2},
		{Term: "GO", Count: 1},
		{Term: "zig", Count: 1},
	}, TopTerms(terms, 0))

	assert.Equal(t, []model.TermCount{{Term: "go", Count: 2}}, TopTerms(terms, 1))
	assert.Empty(t, TopTerms(nil, 10))
}
