package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderAndTable(t *testing.T) {
	b := NewBuilder[VideoRecord](2)
	b.Add(VideoRecord{VideoID: "a", ViewCount: 5})
	b.Add(VideoRecord{VideoID: "b", ViewCount: 1})
	assert.Equal(t, 2, b.Len())

	table := b.Build()
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "b", table.Row(1).VideoID)
	assert.Equal(t, []string{"a", "b"}, Column(table, func(v VideoRecord) string { return v.VideoID }))

	popular := table.Filter(func(v VideoRecord) bool { return v.ViewCount > 2 })
	assert.Equal(t, 1, popular.Len())
	assert.Equal(t, "a", popular.Row(0).VideoID)
}

func TestEmptyTable(t *testing.T) {
	table := NewBuilder[CommentRecord](0).Build()

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, Column(table, func(c CommentRecord) int64 { return c.LikeCount }))
	assert.Equal(t, 0, table.Filter(func(CommentRecord) bool { return true }).Len())
}

func TestMetricValue(t *testing.T) {
	v := VideoRecord{ViewCount: 1, LikeCount: 2, DislikeCount: 3, CommentCount: 4}

	tests := []struct {
		metric string
		want   int64
		ok     bool
	}{
		{MetricView, 1, true},
		{MetricLike, 2, true},
		{MetricDislike, 3, true},
		{MetricComment, 4, true},
		{"favorite", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			got, ok := v.MetricValue(tt.metric)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommentRecordIsTopLevel(t *testing.T) {
	parent := "thread-1"
	assert.True(t, CommentRecord{CommentID: "thread-1"}.IsTopLevel())
	assert.False(t, CommentRecord{CommentID: "r", ParentID: &parent}.IsTopLevel())
}
