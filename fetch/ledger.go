package fetch

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Call kinds recorded by the ledger.
const (
	CallSearch          = "search.list"
	CallVideos          = "videos.list"
	CallChannels        = "channels.list"
	CallPlaylistItems   = "playlistItems.list"
	CallCommentThreads  = "commentThreads.list"
	CallComments        = "comments.list"
	CallVideoCategories = "videoCategories.list"
)

// quotaCost is the quota unit cost of one call per kind, as published for the Data API.
var quotaCost = map[string]int{
	CallSearch:          100,
	CallVideos:          1,
	CallChannels:        1,
	CallPlaylistItems:   1,
	CallCommentThreads:  1,
	CallComments:        1,
	CallVideoCategories: 1,
}

// Ledger counts external calls and their quota cost for one request.
type Ledger struct {
	mu    sync.Mutex
	calls map[string]int
	cost  int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{calls: make(map[string]int)}
}

// Record registers one call of the given kind.
func (l *Ledger) Record(kind string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[kind]++
	cost, ok := quotaCost[kind]
	if !ok {
		cost = 1
	}
	l.cost += cost
}

// Calls returns the number of calls recorded for kind.
func (l *Ledger) Calls(kind string) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[kind]
}

// TotalCalls returns the number of recorded calls of every kind.
func (l *Ledger) TotalCalls() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, n := range l.calls {
		total += n
	}
	return total
}

// Cost returns the accumulated quota cost.
func (l *Ledger) Cost() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cost
}

// CallCount is one line of a ledger summary.
type CallCount struct {
	Kind  string
	Calls int
}

// Summary returns the per-kind call counts sorted by kind.
func (l *Ledger) Summary() []CallCount {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]CallCount, 0, len(l.calls))
	for kind, n := range l.calls {
		out = append(out, CallCount{Kind: kind, Calls: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Log writes the ledger summary as one event.
func (l *Ledger) Log(logger zerolog.Logger, msg string) {
	dict := zerolog.Dict()
	for _, c := range l.Summary() {
		dict = dict.Int(c.Kind, c.Calls)
	}
	logger.Info().
		Dict("calls", dict).
		Int("quota_cost", l.Cost()).
		Msg(msg)
}
