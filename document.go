package howto

import "strings"

// DefaultDifficulty is reported for every document. Difficulty is not
// inferred from content.
const DefaultDifficulty = "Intermediate"

// MinReadTime is the floor for Document.ReadTime, in minutes.
const MinReadTime = 3

// Step is a single instruction of a how-to guide.
type Step struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"` // nil when the step has no tips, never empty
}

// RelatedLink points to another article on the same site.
type RelatedLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Document is a structured how-to guide extracted from one article.
type Document struct {
	Title         string        `json:"title"`
	Introduction  string        `json:"introduction"`
	Prerequisites []string      `json:"prerequisites"`
	Steps         []Step        `json:"steps"`
	Conclusion    string        `json:"conclusion"`
	RelatedLinks  []RelatedLink `json:"relatedLinks"`
	ReadTime      int           `json:"readTime"`
	Difficulty    string        `json:"difficulty"`
	Source        string        `json:"source"`
}

// Sections holds the optional parts of an article found independently of
// the step list. Zero values mean the section was absent.
type Sections struct {
	Title         string
	Introduction  string
	Prerequisites []string
	RelatedLinks  []RelatedLink
}

// NewDocument assembles a Document from located sections and extracted steps.
// Returns EEXTRACT if steps is empty; a Document never has zero steps.
func NewDocument(sections Sections, steps []Step, source string) (*Document, error) {
	if len(steps) == 0 {
		return nil, Errorf(EEXTRACT, "could not extract steps from article; the page structure may have changed")
	}

	lower := strings.ToLower(sections.Title)

	intro := sections.Introduction
	if intro == "" {
		intro = "Learn " + lower + " with this comprehensive guide from wikiHow."
	}

	return &Document{
		Title:         sections.Title,
		Introduction:  intro,
		Prerequisites: nilIfEmpty(sections.Prerequisites),
		Steps:         steps,
		Conclusion:    "By following these steps, you should now know " + lower + ". Practice makes perfect!",
		RelatedLinks:  nilIfEmpty(sections.RelatedLinks),
		ReadTime:      ReadTime(len(steps)),
		Difficulty:    DefaultDifficulty,
		Source:        source,
	}, nil
}

// ReadTime estimates reading time in minutes: one minute per step,
// never less than MinReadTime.
func ReadTime(steps int) int {
	return max(MinReadTime, steps)
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
