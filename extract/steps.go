package extract

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/howto"
)

// Step limits.
const (
	MaxSteps             = 15
	MaxTips              = 3
	MaxContentCandidates = 20
)

// Strategy locates candidate step elements in a document.
type Strategy struct {
	Name   string
	Locate func(root howto.Node) []howto.Node
}

// Strategies are tried in order; the first one returning any candidate wins.
var Strategies = []Strategy{
	{Name: howto.StrategyMarkedStep, Locate: MarkedSteps},
	{Name: howto.StrategyStepID, Locate: StepIDs},
	{Name: howto.StrategyStepsList, Locate: StepsList},
	{Name: howto.StrategyContentList, Locate: ContentList},
}

var (
	stepIDPattern = regexp.MustCompile(`step_id_\d+`)

	contentMatch = howto.Match{Tags: []string{"div"}, ID: "mw-content-text"}

	stepsListMatches = []howto.Match{
		{Tags: []string{"div"}, Class: "steps_list_2"},
		{Tags: []string{"ol"}, Class: "steps_list"},
	}

	tipsMatches = []howto.Match{
		{Tags: []string{"div"}, Class: "tips"},
		{Tags: []string{"ul"}, Class: "tips"},
	}
)

// MarkedSteps returns elements explicitly marked as steps.
func MarkedSteps(root howto.Node) []howto.Node {
	return root.FindAll(howto.Match{Tags: []string{"div"}, Class: "step"}, 0)
}

// StepIDs returns elements whose id follows the step_id_<N> pattern.
func StepIDs(root howto.Node) []howto.Node {
	return root.FindAll(howto.Match{Tags: []string{"div"}, IDPattern: stepIDPattern}, 0)
}

// StepsList returns the direct children of the first steps list container.
func StepsList(root howto.Node) []howto.Node {
	for _, m := range stepsListMatches {
		if list, ok := root.Find(m); ok {
			return list.Children(howto.Tag("div", "li"))
		}
	}
	return nil
}

// ContentList returns list items of the main content region, whatever
// their semantics.
func ContentList(root howto.Node) []howto.Node {
	content, ok := root.Find(contentMatch)
	if !ok {
		return nil
	}
	return content.FindAll(howto.Tag("li"), MaxContentCandidates)
}

// LocateSteps runs the strategies in order and returns the first
// non-empty candidate set with the name of the strategy that produced it.
func LocateSteps(root howto.Node) (string, []howto.Node) {
	for _, s := range Strategies {
		if candidates := s.Locate(root); len(candidates) > 0 {
			return s.Name, candidates
		}
	}
	return "", nil
}

// ExtractSteps locates candidates and parses at most MaxSteps of them.
// Candidates too short to be instructions are dropped, so the result may be
// empty even when a strategy matched; no later strategy is tried then.
func ExtractSteps(root howto.Node) ([]howto.Step, howto.Trace) {
	name, candidates := LocateSteps(root)
	trace := howto.Trace{Strategy: name, Candidates: len(candidates)}

	var steps []howto.Step
	for _, el := range candidates[:min(len(candidates), MaxSteps)] {
		if step, ok := ParseStep(el, len(steps)+1); ok {
			steps = append(steps, step)
		}
	}
	trace.Steps = len(steps)
	return steps, trace
}

// ParseStep parses a candidate element into the n-th step. The first bold
// fragment becomes the title and is left out of the description. Reports
// false when the description is shorter than MinStepDescription.
func ParseStep(el howto.Node, n int) (howto.Step, bool) {
	title := fmt.Sprintf("Step %d", n)
	var bold howto.Node
	if b, ok := el.Find(howto.Tag("b")); ok {
		bold = b
		if t := Clean(b.Text(" ")); t != "" {
			title = t
		}
	}

	description := Clean(el.TextExcluding(" ", bold))
	if !long(description, MinStepDescription) {
		return howto.Step{}, false
	}

	return howto.Step{
		Title:       title,
		Description: description,
		Tips:        Tips(el),
	}, true
}

// Tips returns up to MaxTips items of the element's tips container, or nil
// when the container is missing or has no items.
func Tips(el howto.Node) []string {
	for _, m := range tipsMatches {
		if box, ok := el.Find(m); ok {
			return texts(box.FindAll(howto.Tag("li"), MaxTips))
		}
	}
	return nil
}
