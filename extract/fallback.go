package extract

import (
	"fmt"

	"github.com/fwojciec/howto"
)

// MinFallbackItems is the number of direct items a list needs before the
// aggressive fallback treats it as a step list.
const MinFallbackItems = 3

// AggressiveSteps mines the lists of the main content region for steps when
// every targeted strategy failed. The first list with at least
// MinFallbackItems direct items that yields a step wins; lists are never
// merged. Items shorter than MinFallbackItem are skipped.
func AggressiveSteps(root howto.Node) []howto.Step {
	content, ok := root.Find(contentMatch)
	if !ok {
		return nil
	}

	for _, list := range content.FindAll(howto.Tag("ol", "ul"), 0) {
		items := list.Children(howto.Tag("li"))
		if len(items) < MinFallbackItems {
			continue
		}

		var steps []howto.Step
		for _, item := range items[:min(len(items), MaxSteps)] {
			text := Clean(item.Text(" "))
			if !long(text, MinFallbackItem) {
				continue
			}
			steps = append(steps, howto.Step{
				Title:       fmt.Sprintf("Step %d", len(steps)+1),
				Description: text,
			})
		}
		if len(steps) > 0 {
			return steps
		}
	}
	return nil
}
