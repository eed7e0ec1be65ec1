package metrics

import (
	"math"
	"slices"
	"strings"

	"github.com/researchaccelerator-hub/video-insights/model"
	"gonum.org/v1/gonum/stat"
)

// ChannelCount is the number of videos of one channel.
type ChannelCount struct {
	ChannelID    string
	ChannelTitle string
	Count        int
}

// LinkCount splits the videos of one channel by whether their description
// carries a clickable link.
type LinkCount struct {
	ChannelID    string
	ChannelTitle string
	WithLink     int
	WithoutLink  int
}

// DurationHistogram holds the whole-minute durations of one channel's videos
// after outliers were cut.
type DurationHistogram struct {
	ChannelID    string
	ChannelTitle string
	Minutes      []float64
	Bins         int
	Cutoff       float64 // seconds; longer videos were dropped
	Dropped      int
}

// channelOrder returns the channel ids in order of first appearance, with the
// title of their first row.
func channelOrder(videos model.Table[model.VideoRecord]) ([]string, map[string]string) {
	var ids []string
	titles := make(map[string]string)
	for _, v := range videos.Rows() {
		if _, ok := titles[v.ChannelID]; !ok {
			ids = append(ids, v.ChannelID)
			titles[v.ChannelID] = v.ChannelTitle
		}
	}
	return ids, titles
}

// VideoCounts counts the videos per channel, largest count first.
func VideoCounts(videos model.Table[model.VideoRecord]) []ChannelCount {
	ids, titles := channelOrder(videos)
	counts := make(map[string]int, len(ids))
	for _, v := range videos.Rows() {
		counts[v.ChannelID]++
	}

	out := make([]ChannelCount, 0, len(ids))
	for _, id := range ids {
		out = append(out, ChannelCount{ChannelID: id, ChannelTitle: titles[id], Count: counts[id]})
	}
	slices.SortStableFunc(out, func(a, b ChannelCount) int { return b.Count - a.Count })
	return out
}

// HasLink reports whether a description carries a clickable link.
func HasLink(description string) bool {
	return strings.Contains(description, "http")
}

// LinkCounts counts videos with and without links per channel, in order of
// first appearance.
func LinkCounts(videos model.Table[model.VideoRecord]) []LinkCount {
	ids, titles := channelOrder(videos)
	index := make(map[string]int, len(ids))
	out := make([]LinkCount, len(ids))
	for i, id := range ids {
		index[id] = i
		out[i] = LinkCount{ChannelID: id, ChannelTitle: titles[id]}
	}
	for _, v := range videos.Rows() {
		lc := &out[index[v.ChannelID]]
		if HasLink(v.Description) {
			lc.WithLink++
		} else {
			lc.WithoutLink++
		}
	}
	return out
}

// DurationMinutes builds the duration histogram of one channel. Videos longer
// than Q3 + 1.5*IQR of the channel's durations are dropped, the remaining
// durations are truncated to whole minutes and the bin count is the longest
// remaining minute, at least 1.
func DurationMinutes(videos model.Table[model.VideoRecord], channelID string) DurationHistogram {
	h := DurationHistogram{ChannelID: channelID, Bins: 1}

	var seconds []float64
	for _, v := range videos.Rows() {
		if v.ChannelID != channelID {
			continue
		}
		if h.ChannelTitle == "" {
			h.ChannelTitle = v.ChannelTitle
		}
		seconds = append(seconds, float64(v.DurationSec))
	}
	if len(seconds) == 0 {
		return h
	}

	h.Cutoff = OutlierCutoff(seconds)
	for _, s := range seconds {
		if s > h.Cutoff {
			h.Dropped++
			continue
		}
		m := math.Trunc(s / 60)
		h.Minutes = append(h.Minutes, m)
		if int(m) > h.Bins {
			h.Bins = int(m)
		}
	}
	return h
}

// OutlierCutoff returns Q3 + 1.5*(Q3-Q1) of xs using linearly interpolated
// quantiles. xs is not modified.
func OutlierCutoff(xs []float64) float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return q3 + 1.5*(q3-q1)
}
