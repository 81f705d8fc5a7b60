package core

// Well-known names in the Jira field catalog that carry Feature/Epic linkage.
const (
	FieldNameParentLink = "Parent Link"
	FieldNameEpicName   = "Epic Name"
)

// Logical payload keys for the system fields every clone carries.
const (
	FieldProject     = "project"
	FieldSummary     = "summary"
	FieldIssueType   = "issuetype"
	FieldDescription = "description"
	FieldLabels      = "labels"
)

// Field is one entry of the tracker's field catalog.
type Field struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Issue is the subset of a tracker issue a clone run reads.
// Custom holds every non-system field keyed by field id (e.g. "customfield_12311140").
type Issue struct {
	Key         string         `json:"key"`
	Project     string         `json:"project"`
	Type        string         `json:"issuetype"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	Labels      []string       `json:"labels,omitempty"`
	Custom      map[string]any `json:"custom,omitempty"`
}

// CustomValue returns the value of the custom field with the given id, or nil.
func (i *Issue) CustomValue(id string) any {
	if i == nil || i.Custom == nil {
		return nil
	}
	return i.Custom[id]
}

// FieldMap maps human-readable field names to tracker field ids.
type FieldMap map[string]string

// NewFieldMap indexes a field catalog by name. Later duplicates win.
func NewFieldMap(fields []Field) FieldMap {
	m := make(FieldMap, len(fields))
	for _, f := range fields {
		m[f.Name] = f.ID
	}
	return m
}

func (m FieldMap) ParentLink() string {
	if m == nil {
		return ""
	}
	return m[FieldNameParentLink]
}

func (m FieldMap) EpicName() string {
	if m == nil {
		return ""
	}
	return m[FieldNameEpicName]
}

// Payload is a creation request keyed by field id. System fields use the
// logical keys above with plain string values.
type Payload map[string]any
