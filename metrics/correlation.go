package metrics

import (
	"math"

	"github.com/researchaccelerator-hub/video-insights/model"
	"gonum.org/v1/gonum/stat"
)

// Correlation returns the Pearson correlation between the compound score and
// the like count of the comments. It reports false when fewer than two rows
// exist or either column is constant, since the coefficient is undefined then.
func Correlation(comments model.Table[model.CommentSentiment]) (float64, bool) {
	if comments.Len() < 2 {
		return 0, false
	}
	compound := model.Column(comments, func(c model.CommentSentiment) float64 { return c.Compound })
	likes := model.Column(comments, func(c model.CommentSentiment) float64 { return float64(c.LikeCount) })

	if constant(compound) || constant(likes) {
		return 0, false
	}
	r := stat.Correlation(compound, likes, nil)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
