package tabular

import "github.com/researchaccelerator-hub/video-insights/model/youtube"

// defaultCategories is the platform's fixed video category table.
var defaultCategories = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"18": "Short Movies",
	"19": "Travel & Events",
	"20": "Gaming",
	"21": "Videoblogging",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
	"30": "Movies",
	"31": "Anime/Animation",
	"32": "Action/Adventure",
	"33": "Classics",
	"34": "Comedy",
	"35": "Documentary",
	"36": "Drama",
	"37": "Family",
	"38": "Foreign",
	"39": "Horror",
	"40": "Sci-Fi/Fantasy",
	"41": "Thriller",
	"42": "Shorts",
	"43": "Shows",
	"44": "Trailers",
}

// Categories resolves category ids to display names.
type Categories struct {
	names map[string]string
}

// DefaultCategories returns the static category table.
func DefaultCategories() *Categories {
	names := make(map[string]string, len(defaultCategories))
	for id, name := range defaultCategories {
		names[id] = name
	}
	return &Categories{names: names}
}

// WithLive returns the static table overlaid with categories listed by the API.
func WithLive(live []youtube.Category) *Categories {
	c := DefaultCategories()
	for _, cat := range live {
		if cat.ID != "" && cat.Title != "" {
			c.names[cat.ID] = cat.Title
		}
	}
	return c
}

// Name returns the display name of id, empty when unknown.
func (c *Categories) Name(id string) string {
	if c == nil {
		return ""
	}
	return c.names[id]
}

// Len returns the number of known categories.
func (c *Categories) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}
