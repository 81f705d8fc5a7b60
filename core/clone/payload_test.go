package clone

import (
	"testing"

	"github.com/opensdd/feature-clone/core"
	"github.com/stretchr/testify/assert"
)

func TestFeaturePayload(t *testing.T) {
	t.Parallel()
	feature := core.Issue{
		Key:         "FOO-1",
		Project:     "FOO",
		Type:        "Feature",
		Summary:     "Old F",
		Description: "d",
		Labels:      []string{"x"},
	}
	assert.Equal(t, core.Payload{
		core.FieldProject:     "FOO",
		core.FieldSummary:     "New F",
		core.FieldIssueType:   "Feature",
		core.FieldDescription: "d",
	}, FeaturePayload(feature, "New F"))
}

func TestEpicPayload(t *testing.T) {
	t.Parallel()
	fields := core.FieldMap{core.FieldNameParentLink: "cf_parent", core.FieldNameEpicName: "cf_name"}
	epic := core.Issue{
		Key:     "FOO-2",
		Project: "FOO",
		Type:    "Epic",
		Summary: "Epic two",
		Labels:  []string{"e"},
		Custom:  map[string]any{"cf_name": "Two", "cf_parent": "FOO-1"},
	}

	p := EpicPayload(epic, fields, "FOO-9")
	assert.Equal(t, core.Payload{
		core.FieldProject:     "FOO",
		core.FieldSummary:     "Epic two",
		core.FieldIssueType:   "Epic",
		core.FieldDescription: "",
		"cf_name":             "Two",
		"cf_parent":           "FOO-9",
	}, p)
	assert.NotContains(t, p, core.FieldLabels)
}

func TestLabelsToApply(t *testing.T) {
	t.Parallel()
	assert.Nil(t, labelsToApply(core.Issue{}))
	assert.Nil(t, labelsToApply(core.Issue{Labels: []string{}}))

	src := core.Issue{Labels: []string{"x"}}
	got := labelsToApply(src)
	assert.Equal(t, []string{"x"}, got)
	got[0] = "changed"
	assert.Equal(t, "x", src.Labels[0])
}
