package extract

import (
	"net/url"

	"github.com/fwojciec/howto"
)

// Section limits.
const (
	MaxPrerequisites = 5
	MaxRelatedLinks  = 5
)

// Section markers.
var (
	headlineMatch      = howto.Match{Tags: []string{"h1"}, Class: "mw-headline"}
	introMatch         = howto.Match{Tags: []string{"div"}, ID: "intro"}
	prerequisitesMatch = howto.Match{Tags: []string{"div"}, ID: "thingsyoullneed_anchor"}
	relatedMatch       = howto.Match{Tags: []string{"div"}, ID: "related_articles"}
)

// LocateSections runs every section locator against root. Locators are
// independent of each other and of the step pipeline.
func LocateSections(root howto.Node, source, query string) howto.Sections {
	return howto.Sections{
		Title:         LocateTitle(root, query),
		Introduction:  LocateIntroduction(root),
		Prerequisites: LocatePrerequisites(root),
		RelatedLinks:  LocateRelatedLinks(root, source),
	}
}

// LocateTitle returns the article headline, falling back to the first h1
// and finally to query.
func LocateTitle(root howto.Node, query string) string {
	for _, m := range []howto.Match{headlineMatch, howto.Tag("h1")} {
		if n, ok := root.Find(m); ok {
			if title := Clean(n.Text(" ")); title != "" {
				return title
			}
		}
	}
	return Clean(query)
}

// LocateIntroduction returns the first paragraph of the intro container,
// or "" when either is missing.
func LocateIntroduction(root howto.Node) string {
	intro, ok := root.Find(introMatch)
	if !ok {
		return ""
	}
	p, ok := intro.Find(howto.Tag("p"))
	if !ok {
		return ""
	}
	return Clean(p.Text(" "))
}

// LocatePrerequisites returns up to MaxPrerequisites items of the
// "things you'll need" list, or nil when there are none.
func LocatePrerequisites(root howto.Node) []string {
	section, ok := root.Find(prerequisitesMatch)
	if !ok {
		return nil
	}
	return texts(section.FindAll(howto.Tag("li"), MaxPrerequisites))
}

// LocateRelatedLinks returns up to MaxRelatedLinks links of the related
// articles box with hrefs made absolute against the origin of source.
// Anchors without an href are skipped. Returns nil when there are none.
func LocateRelatedLinks(root howto.Node, source string) []howto.RelatedLink {
	section, ok := root.Find(relatedMatch)
	if !ok {
		return nil
	}

	var links []howto.RelatedLink
	for _, a := range section.FindAll(howto.Tag("a"), MaxRelatedLinks) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			continue
		}
		abs, err := Absolute(source, href)
		if err != nil {
			continue
		}
		links = append(links, howto.RelatedLink{
			Title: Clean(a.Text(" ")),
			URL:   abs,
		})
	}
	return links
}

// Absolute resolves href against the origin (scheme and host) of base.
func Absolute(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	origin := &url.URL{Scheme: b.Scheme, Host: b.Host, Path: "/"}
	return origin.ResolveReference(ref).String(), nil
}
