// Package metrics derives analytics from the video and comment tables.
package metrics

import (
	"github.com/jonreiter/govader"
	"github.com/researchaccelerator-hub/video-insights/model"
)

// Scorer assigns a lexicon polarity to a text.
type Scorer interface {
	Score(text string) model.SentimentScore
}

// VaderScorer scores texts with the VADER lexicon and rules.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon. The scorer is read-only after
// construction and may be shared between requests.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements Scorer.
func (v *VaderScorer) Score(text string) model.SentimentScore {
	s := v.analyzer.PolarityScores(text)
	return model.SentimentScore{
		Neg:      s.Negative,
		Neu:      s.Neutral,
		Pos:      s.Positive,
		Compound: s.Compound,
	}
}

// ScoreComments scores the original text of every comment and joins the score
// positionally with its row. CumSum is left at 0, see Cumulate.
func ScoreComments(scorer Scorer, comments model.Table[model.CommentRecord]) model.Table[model.CommentSentiment] {
	b := model.NewBuilder[model.CommentSentiment](comments.Len())
	for _, c := range comments.Rows() {
		b.Add(model.CommentSentiment{
			CommentRecord:  c,
			SentimentScore: scorer.Score(c.TextOriginal),
		})
	}
	return b.Build()
}

var _ Scorer = (*VaderScorer)(nil)
