package extract_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/howto"
	"github.com/fwojciec/howto/extract"
	"github.com/fwojciec/howto/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) howto.Node {
	t.Helper()
	root, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return root
}

func TestLocateSteps(t *testing.T) {
	t.Parallel()

	t.Run("marked steps win over step ids", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div id="step_id_1">Identifier step should never be used.</div>
<div class="step">Marked step is the one that counts.</div>
</body>`)

		name, candidates := extract.LocateSteps(root)

		assert.Equal(t, howto.StrategyMarkedStep, name)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Marked step is the one that counts.", candidates[0].Text(" "))
	})

	t.Run("falls through to step ids", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div id="step_id_1">First step by identifier.</div>
<div id="step_id_2">Second step by identifier.</div>
<div id="sidebar">Not a step.</div>
</body>`)

		name, candidates := extract.LocateSteps(root)

		assert.Equal(t, howto.StrategyStepID, name)
		assert.Len(t, candidates, 2)
	})

	t.Run("falls through to steps_list_2 children", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><div class="steps_list_2">
<div>First child container.</div>
<li>Second child item.</li>
<p>Ignored paragraph.</p>
</div></body>`)

		name, candidates := extract.LocateSteps(root)

		assert.Equal(t, howto.StrategyStepsList, name)
		assert.Len(t, candidates, 2)
	})

	t.Run("uses alternate ordered steps list", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><ol class="steps_list">
<li>First list item.</li>
<li>Second list item.</li>
<li>Third list item.</li>
</ol></body>`)

		name, candidates := extract.LocateSteps(root)

		assert.Equal(t, howto.StrategyStepsList, name)
		assert.Len(t, candidates, 3)
	})

	t.Run("falls through to content list items capped at twenty", func(t *testing.T) {
		t.Parallel()

		var items strings.Builder
		for i := 1; i <= 25; i++ {
			fmt.Fprintf(&items, "<li>Content item number %d</li>", i)
		}
		root := parse(t, `<body><ul><li>Outside content.</li></ul><div id="mw-content-text"><ul>`+items.String()+`</ul></div></body>`)

		name, candidates := extract.LocateSteps(root)

		assert.Equal(t, howto.StrategyContentList, name)
		require.Len(t, candidates, 20)
		assert.Equal(t, "Content item number 1", candidates[0].Text(" "))
	})

	t.Run("reports no strategy when nothing matches", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><p>Just prose.</p></body>`)

		name, candidates := extract.LocateSteps(root)

		assert.Empty(t, name)
		assert.Empty(t, candidates)
	})
}

func TestExtractSteps(t *testing.T) {
	t.Parallel()

	t.Run("separates bold title from description", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div class="step"><b>Drape the tie.</b> Hang it around your neck with the wide end on the right.</div>
<div class="step">Cross the wide end over the narrow end.</div>
</body>`)

		steps, trace := extract.ExtractSteps(root)

		require.Len(t, steps, 2)
		assert.Equal(t, "Drape the tie.", steps[0].Title)
		assert.Equal(t, "Hang it around your neck with the wide end on the right.", steps[0].Description)
		assert.Nil(t, steps[0].Tips)
		assert.Equal(t, "Step 2", steps[1].Title)
		assert.Equal(t, "Cross the wide end over the narrow end.", steps[1].Description)
		assert.Equal(t, howto.Trace{Strategy: howto.StrategyMarkedStep, Candidates: 2, Steps: 2}, trace)
	})

	t.Run("collapses whitespace in description", func(t *testing.T) {
		t.Parallel()

		root := parse(t, "<div class=\"step\">Pull\n\n   the <i>knot</i>  tight.</div>")

		steps, _ := extract.ExtractSteps(root)

		require.Len(t, steps, 1)
		assert.Equal(t, "Pull the knot tight.", steps[0].Description)
	})

	t.Run("discards nine character description and keeps ten", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div class="step"><b>Short</b>Abcdefghi</div>
<div class="step"><b>Exact</b>Abcdefghij</div>
</body>`)

		steps, trace := extract.ExtractSteps(root)

		require.Len(t, steps, 1)
		assert.Equal(t, "Exact", steps[0].Title)
		assert.Equal(t, "Abcdefghij", steps[0].Description)
		assert.Equal(t, 2, trace.Candidates)
		assert.Equal(t, 1, trace.Steps)
	})

	t.Run("numbers default titles by kept steps", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div class="step">tiny</div>
<div class="step">A real instruction without a bold title.</div>
</body>`)

		steps, _ := extract.ExtractSteps(root)

		require.Len(t, steps, 1)
		assert.Equal(t, "Step 1", steps[0].Title)
	})

	t.Run("caps thirty marked steps at fifteen in document order", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 1; i <= 30; i++ {
			fmt.Fprintf(&b, `<div class="step">Instruction number %d goes here.</div>`, i)
		}
		root := parse(t, "<body>"+b.String()+"</body>")

		steps, trace := extract.ExtractSteps(root)

		require.Len(t, steps, 15)
		for i, step := range steps {
			assert.Equal(t, fmt.Sprintf("Instruction number %d goes here.", i+1), step.Description)
		}
		assert.Equal(t, 30, trace.Candidates)
	})

	t.Run("does not fall through when winning candidates are all discarded", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div class="step">ad</div>
<div id="step_id_1">This identifier step is long enough to keep.</div>
</body>`)

		steps, trace := extract.ExtractSteps(root)

		assert.Empty(t, steps)
		assert.Equal(t, howto.StrategyMarkedStep, trace.Strategy)
		assert.Equal(t, 1, trace.Candidates)
		assert.Zero(t, trace.Steps)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
<div class="step"><b>Title one.</b> Description one is long enough.<ul class="tips"><li>Tip A</li></ul></div>
<div class="step"><b>Title two.</b> Description two is long enough.</div>
</body>`)

		first, firstTrace := extract.ExtractSteps(root)
		second, secondTrace := extract.ExtractSteps(root)

		require.Len(t, first, 2)
		assert.Equal(t, first, second)
		assert.Equal(t, firstTrace, secondTrace)
		assert.Equal(t, "Title one.", second[0].Title)
	})
}

func TestTips(t *testing.T) {
	t.Parallel()

	t.Run("collects up to three tips", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div class="step">Tie it carefully.<div class="tips"><ul>
<li> Tip one </li><li>Tip two</li><li>Tip three</li><li>Tip four</li>
</ul></div></div>`)
		el, ok := root.Find(howto.Match{Tags: []string{"div"}, Class: "step"})
		require.True(t, ok)

		assert.Equal(t, []string{"Tip one", "Tip two", "Tip three"}, extract.Tips(el))
	})

	t.Run("uses alternate tips list", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div class="step">Tie it carefully.<ul class="tips"><li>Use a mirror.</li></ul></div>`)
		el, ok := root.Find(howto.Match{Tags: []string{"div"}, Class: "step"})
		require.True(t, ok)

		assert.Equal(t, []string{"Use a mirror."}, extract.Tips(el))
	})

	t.Run("collapses empty tips container to nil", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div class="step">Tie it carefully.<div class="tips"><p>No items here.</p></div></div>`)
		el, ok := root.Find(howto.Match{Tags: []string{"div"}, Class: "step"})
		require.True(t, ok)

		assert.Nil(t, extract.Tips(el))
	})

	t.Run("returns nil without tips container", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div class="step">Tie it carefully.</div>`)
		el, ok := root.Find(howto.Match{Tags: []string{"div"}, Class: "step"})
		require.True(t, ok)

		assert.Nil(t, extract.Tips(el))
	})
}
