package worksheet

import (
	"hash/fnv"
	"strings"
)

// Video is a known-good educational video used when search results cannot
// be recovered.
type Video struct {
	Title       string
	Channel     string
	URL         string
	Description string
}

// SafeVideos returns the built-in catalog.
func SafeVideos() []Video {
	return []Video{
		{
			Title:       "The danger of a single story",
			Channel:     "TED",
			URL:         "https://www.youtube.com/watch?v=D9Ihs241zeg",
			Description: "Novelist Chimamanda Ngozi Adichie explains how hearing only one story about a people or place leads to critical misunderstanding.",
		},
		{
			Title:       "Do schools kill creativity?",
			Channel:     "TED",
			URL:         "https://www.youtube.com/watch?v=iG9CE55wbtY",
			Description: "Sir Ken Robinson argues that education systems should nurture creativity rather than undermine it.",
		},
		{
			Title:       "The power of vulnerability",
			Channel:     "TED",
			URL:         "https://www.youtube.com/watch?v=iCvmsMzlF7o",
			Description: "Researcher Brené Brown shares findings on human connection, empathy and the courage to be vulnerable.",
		},
		{
			Title:       "Inside the mind of a master procrastinator",
			Channel:     "TED",
			URL:         "https://www.youtube.com/watch?v=arj7oStGLkU",
			Description: "Tim Urban takes a humorous look at procrastination and why deadlines shape how we work.",
		},
		{
			Title:       "How to speak so that people want to listen",
			Channel:     "TED",
			URL:         "https://www.youtube.com/watch?v=eIho2S0ZahI",
			Description: "Sound expert Julian Treasure demonstrates the habits and vocal tools of powerful speaking.",
		},
	}
}

// pickVideo selects a catalog entry for topic. The same topic always maps to
// the same video.
func pickVideo(catalog []Video, topic string) Video {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(topic))))
	return catalog[h.Sum32()%uint32(len(catalog))]
}
