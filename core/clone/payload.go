package clone

import (
	"github.com/opensdd/feature-clone/core"
)

// FeaturePayload builds the creation payload of the Feature clone. Labels are
// never part of it; they are applied by a follow-up update.
func FeaturePayload(feature core.Issue, summary string) core.Payload {
	return core.Payload{
		core.FieldProject:     feature.Project,
		core.FieldSummary:     summary,
		core.FieldIssueType:   feature.Type,
		core.FieldDescription: feature.Description,
	}
}

// EpicPayload builds the creation payload of an Epic clone parented to parentKey.
func EpicPayload(epic core.Issue, fields core.FieldMap, parentKey string) core.Payload {
	epicName := fields.EpicName()
	return core.Payload{
		core.FieldProject:     epic.Project,
		core.FieldSummary:     epic.Summary,
		core.FieldIssueType:   epic.Type,
		core.FieldDescription: epic.Description,
		epicName:              epic.CustomValue(epicName),
		fields.ParentLink():   parentKey,
	}
}

// labelsToApply returns a copy of the labels a clone of src should receive, or nil.
func labelsToApply(src core.Issue) []string {
	if len(src.Labels) == 0 {
		return nil
	}
	return append([]string(nil), src.Labels...)
}
