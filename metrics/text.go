package metrics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/researchaccelerator-hub/video-insights/model"
)

// MaxCloudTerms is the number of terms a word cloud shows.
const MaxCloudTerms = 100

var commentToken = regexp.MustCompile(`[a-z0-9]+`)

// stopwords are dropped from term counts. Lookups are case-insensitive.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again against all am an and any are as at be
		because been before being below between both but by can could did do does doing down during
		each few for from further had has have having he her here hers herself him himself his how i
		if in into is it its itself just me more most my myself no nor not now of off on once only or
		other our ours ourselves out over own same she should so some such than that the their theirs
		them themselves then there these they this those through to too under until up very was we
		were what when where which while who whom why will with would you your yours yourself
		yourselves s t don www http https com`) {
		stopwords[w] = struct{}{}
	}
}

// CommentTerms tokenizes the original text of every comment into lowercase
// alphanumeric runs.
func CommentTerms(comments model.Table[model.CommentRecord]) []string {
	var terms []string
	for _, c := range comments.Rows() {
		terms = append(terms, commentToken.FindAllString(strings.ToLower(c.TextOriginal), -1)...)
	}
	return terms
}

// TagTerms splits the tags of every video into uppercase words.
func TagTerms(videos model.Table[model.VideoRecord]) []string {
	var terms []string
	for _, v := range videos.Rows() {
		for _, tag := range v.Tags {
			terms = append(terms, strings.Fields(strings.ToUpper(tag))...)
		}
	}
	return terms
}

// TopTerms counts terms, drops stopwords and returns the n most frequent,
// ties ordered alphabetically. A non-positive n returns every term.
func TopTerms(terms []string, n int) []model.TermCount {
	counts := make(map[string]int)
	for _, t := range terms {
		if _, stop := stopwords[strings.ToLower(t)]; stop {
			continue
		}
		counts[t]++
	}

	out := make([]model.TermCount, 0, len(counts))
	for term, count := range counts {
		out = append(out, model.TermCount{Term: term, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
