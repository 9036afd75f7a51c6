package assistant

import "strings"

// Topic is a preset question for the family harmony tips.
type Topic struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Query string `json:"query"`
}

var topics = []Topic{
	{
		Slug:  "dementia",
		Title: "Tips for Dementia Care",
		Query: "Practical tips for communicating with a family member with dementia or memory loss",
	},
	{
		Slug:  "communication",
		Title: "Improving Communication",
		Query: "How to improve communication and reduce conflict in a multi-generational household",
	},
	{
		Slug:  "cohabitation",
		Title: "Cohabitation Guide",
		Query: "Guide to setting boundaries and sharing responsibilities when living with aging parents",
	},
}

// Topics returns the preset questions in display order.
func Topics() []Topic {
	return append([]Topic(nil), topics...)
}

// LookupTopic finds a preset by slug or title, ignoring case.
func LookupTopic(name string) (Topic, bool) {
	name = strings.TrimSpace(name)
	for _, t := range topics {
		if strings.EqualFold(name, t.Slug) || strings.EqualFold(name, t.Title) {
			return t, true
		}
	}
	return Topic{}, false
}

// ResolveQuery returns the question to ask: query when set, otherwise the
// preset named by topic.
func ResolveQuery(query, topic string) (string, bool) {
	if q := strings.TrimSpace(query); q != "" {
		return q, true
	}
	if topic == "" {
		return "", false
	}
	t, ok := LookupTopic(topic)
	if !ok {
		return "", false
	}
	return t.Query, true
}
