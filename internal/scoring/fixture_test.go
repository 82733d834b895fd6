package scoring

import (
	"testing"

	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/stretchr/testify/require"
)

// baseCatalogYAML carries no templates so each test appends the template
// set it needs. Maximum reachable totals per dimension:
// style 3.0 (q1 + q4), function 1.0 (q2 capped), technical 2.6 (q3 + q4).
const baseCatalogYAML = `
dimensions:
  - id: style
    name: Visual style
  - id: function
    name: Functional fit
  - id: technical
    name: Technical comfort

scoring:
  free_text_factor: 0.6

matching:
  weights:
    style: 50
    function: 30
    technical: 20
  strength_threshold: 80
  weakness_threshold: 40
  technical_floor: 40
  technical_dimension: technical

phases:
  - number: 1
    questions:
      - id: q1
        section: look
        text: Pick a look
        weight: 1.0
        type: single_choice
        required: true
        options:
          - value: bold
            factor: 1.0
          - value: calm
            factor: 0.5
          - value: plain
            factor: 0.0
        dimensions: [style]
      - id: q2
        section: features
        text: Pick the features you need
        weight: 1.0
        type: multi_choice
        options:
          - value: charts
            factor: 0.6
          - value: icons
            factor: 0.6
          - value: media
            factor: 0.4
        dimensions: [function]
  - number: 2
    questions:
      - id: q3
        section: notes
        text: Anything else we should know
        weight: 1.0
        type: free_text
        dimensions: [technical]
      - id: q4
        section: tooling
        text: How comfortable is the team with slide tooling
        weight: 2.0
        type: single_choice
        options:
          - value: high
            factor: 1.0
          - value: low
            factor: 0.25
        dimensions: [style, technical]

plan:
  remediations:
    style:
      title: Rework visual style
      description: Swap the master slides for ones closer to the brief.
      effort_hours: 4
    function:
      title: Add missing building blocks
      description: Bring in the chart and diagram layouts the deck needs.
      effort_hours: 5
    technical:
      title: Simplify advanced features
      description: Replace effects the team cannot maintain.
      effort_hours: 3
  rollout:
    - title: Customize the template
      description: Apply branding and rename the sections.
      effort_hours: 3
    - title: Fill in content
      description: Move the outline into the slides.
      effort_hours: 6
`

func parseCatalog(t *testing.T, content string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(content))
	require.NoError(t, err)
	return cat
}
