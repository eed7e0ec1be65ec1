package service

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/researchaccelerator-hub/video-insights/chart"
	"github.com/researchaccelerator-hub/video-insights/comments"
	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/researchaccelerator-hub/video-insights/metrics"
	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/researchaccelerator-hub/video-insights/tabular"
)

// CommentAnalysis is the result of AnalyzeVideoComments.
type CommentAnalysis struct {
	VideoID  string
	Comments model.Table[model.CommentSentiment] // sorted by publish time
	Positive int
	Negative int
	// Correlation of compound score and like count, rounded to two decimals.
	// HasCorrelation is false when it is undefined.
	Correlation    float64
	HasCorrelation bool
	Anomalies      int
	Images         []Image
	Quota          Quota
}

// AnalyzeVideoComments aggregates every comment of the video, scores their
// sentiment and renders the comment charts.
func (s *Service) AnalyzeVideoComments(ctx context.Context, videoID string) (*CommentAnalysis, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, fmt.Errorf("analyze comments: %w", common.ErrEmptyInput)
	}

	r := s.start(ctx, "video_comments")
	r.logger = r.logger.With().Str("video_id", videoID).Logger()

	agg, err := comments.NewAggregator(s.api, r.fetcher, r.logger).Aggregate(ctx, videoID)
	if err != nil {
		return nil, err
	}

	table := tabular.MapComments(agg.Items)
	all, positive, negative := metrics.Cumulate(metrics.ScoreComments(s.scorer, table))
	r.logger.Info().
		Int("comments", all.Len()).
		Int("positive", positive.Len()).
		Int("negative", negative.Len()).
		Msg("Scored comments")

	terms := metrics.TopTerms(metrics.CommentTerms(table), metrics.MaxCloudTerms)
	charts := []struct {
		title  string
		render func(string) (string, error)
	}{
		{fmt.Sprintf("Wordcloud for %q", videoID), func(t string) (string, error) {
			return s.renderer.TermCloud(t, terms)
		}},
		{"Cumulative sum of comments over time", func(t string) (string, error) {
			return s.renderer.CumulativeLine(t, timeSeries("All comments", nil, all))
		}},
		{"Cumulative sum of comments over time by sentiment", func(t string) (string, error) {
			return s.renderer.CumulativeLine(t,
				timeSeries("Positive sentiment", chart.Positive, positive),
				timeSeries("Negative sentiment", chart.Negative, negative))
		}},
		{"Sentiment / Like count", func(t string) (string, error) {
			return s.renderer.SentimentScatter(t,
				sentimentPoints("Neutral sentiment", chart.Neutral, metrics.Neutral(all)),
				sentimentPoints("Positive sentiment", chart.Positive, positive),
				sentimentPoints("Negative sentiment", chart.Negative, negative))
		}},
	}
	for _, c := range charts {
		if err := r.chart(c.title, c.render); err != nil {
			return nil, err
		}
	}

	out := &CommentAnalysis{
		VideoID:   videoID,
		Comments:  all,
		Positive:  positive.Len(),
		Negative:  negative.Len(),
		Anomalies: agg.Anomalies,
		Images:    r.images,
	}
	if corr, ok := metrics.Correlation(all); ok {
		out.Correlation = metrics.Round2(corr)
		out.HasCorrelation = true
	}
	out.Quota = r.finish()
	return out, nil
}

func timeSeries(label string, c color.Color, t model.Table[model.CommentSentiment]) chart.TimeSeries {
	s := chart.TimeSeries{Label: label, Color: c, Points: make([]chart.TimePoint, 0, t.Len())}
	for _, row := range t.Rows() {
		s.Points = append(s.Points, chart.TimePoint{At: row.PublishedAt, Value: float64(row.CumSum)})
	}
	return s
}

// sentimentPoints plots compound score against log(1 + like count).
func sentimentPoints(label string, c color.Color, t model.Table[model.CommentSentiment]) chart.PointGroup {
	g := chart.PointGroup{Label: label, Color: c, Points: make([]chart.Point, 0, t.Len())}
	for _, row := range t.Rows() {
		g.Points = append(g.Points, chart.Point{X: row.Compound, Y: math.Log1p(float64(row.LikeCount))})
	}
	return g
}
