package metrics

import (
	"fmt"
	"sort"

	"github.com/researchaccelerator-hub/video-insights/model"
)

// TopVideos returns the n videos of every channel with the highest value of
// metric, combined and ordered by that value, highest first, and ranked 1..K.
// Equal values keep the relative order of the input table.
func TopVideos(videos model.Table[model.VideoRecord], metric string, n int) ([]model.RankedVideo, error) {
	if _, ok := (model.VideoRecord{}).MetricValue(metric); !ok {
		return nil, fmt.Errorf("unknown ranking metric %q", metric)
	}
	if n < 1 {
		return nil, fmt.Errorf("ranking size must be positive, got %d", n)
	}

	type row struct {
		video model.VideoRecord
		value int64
	}
	rows := make([]row, 0, videos.Len())
	for _, v := range videos.Rows() {
		value, _ := v.MetricValue(metric)
		rows = append(rows, row{video: v, value: value})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].value > rows[j].value })

	// The sorted order makes the first n rows seen per channel its top n, and
	// any subsequence of it stays sorted.
	perChannel := make(map[string]int)
	ranked := make([]model.RankedVideo, 0, len(rows))
	for _, r := range rows {
		if perChannel[r.video.ChannelID] >= n {
			continue
		}
		perChannel[r.video.ChannelID]++
		ranked = append(ranked, model.RankedVideo{
			Rank:         len(ranked) + 1,
			ChannelID:    r.video.ChannelID,
			ChannelTitle: r.video.ChannelTitle,
			VideoID:      r.video.VideoID,
			Title:        r.video.Title,
			Value:        r.value,
		})
	}
	return ranked, nil
}
