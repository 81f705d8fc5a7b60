package clone

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/opensdd/feature-clone/core"
	"github.com/pkg/errors"
)

// PlaceholderKey stands in for the Feature clone's key during a dry run.
const PlaceholderKey = "<unknown>"

const (
	kindFeature = "feature"
	kindEpic    = "epic"
)

// Tracker is the subset of the issue tracker a clone run talks to.
type Tracker interface {
	ListFields(ctx context.Context) ([]core.Field, error)
	Search(ctx context.Context, jql string) ([]core.Issue, error)
	CreateIssue(ctx context.Context, payload core.Payload) (core.Issue, error)
	UpdateLabels(ctx context.Context, key string, labels []string) error
}

// Options describes one clone run.
type Options struct {
	FeatureKey string
	Summary    string
	DryRun     bool
}

func (o Options) validate() error {
	if strings.TrimSpace(o.FeatureKey) == "" {
		return errors.New("feature key cannot be empty")
	}
	if strings.TrimSpace(o.Summary) == "" {
		return errors.New("summary of the new feature cannot be empty")
	}
	return nil
}

// Clone records what happened (or would have happened) to one source issue.
// Key is the new issue's key: PlaceholderKey for a simulated Feature and empty
// for a simulated Epic. Labels are copied onto the new issue after creation.
type Clone struct {
	Source  core.Issue
	Key     string
	Payload core.Payload
	Labels  []string
	Created bool
}

// Result is the outcome of a run.
type Result struct {
	Fields  core.FieldMap
	Feature Clone
	Epics   []Clone
}

// Cloner runs the clone pipeline against a Tracker. Progress is written to Out
// (stdout when nil). BrowseURL, when set, renders the web link printed after
// the Feature clone is created.
type Cloner struct {
	Tracker   Tracker
	Out       io.Writer
	BrowseURL func(key string) string
}

func (c *Cloner) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Cloner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out(), format, args...)
}

// FeatureQuery is the JQL locating the source Feature.
func FeatureQuery(key string) string {
	return fmt.Sprintf("key=%s and type=Feature", key)
}

// EpicsQuery is the JQL locating the Epics whose parent link is key.
func EpicsQuery(key string) string {
	return fmt.Sprintf("'%s'=%s", core.FieldNameParentLink, key)
}

// ResolveFields reads the field catalog once and fails with a
// core.ConfigurationError unless both linkage fields are defined.
func ResolveFields(ctx context.Context, t Tracker) (core.FieldMap, error) {
	catalog, err := t.ListFields(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect jira fields")
	}
	fields := core.NewFieldMap(catalog)

	var missing []string
	for _, name := range []string{core.FieldNameParentLink, core.FieldNameEpicName} {
		if fields[name] == "" {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return nil, core.NewConfigurationError(
			fmt.Sprintf("jira field catalog has no %s field", strings.Join(missing, " or ")))
	}
	slog.Debug("Resolved jira fields", "parentLink", fields.ParentLink(), "epicName", fields.EpicName())
	return fields, nil
}

// FindFeature returns the first issue matching FeatureQuery(key).
func FindFeature(ctx context.Context, t Tracker, key string) (core.Issue, error) {
	query := FeatureQuery(key)
	results, err := t.Search(ctx, query)
	if err != nil {
		return core.Issue{}, errors.Wrap(err, "failed to look up feature")
	}
	if len(results) == 0 {
		return core.Issue{}, core.NewNotFoundError("Feature not found", query)
	}
	return results[0], nil
}

// FindEpics returns every issue whose parent link is key. No results is an error.
func FindEpics(ctx context.Context, t Tracker, key string) ([]core.Issue, error) {
	query := EpicsQuery(key)
	results, err := t.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to gather child epics")
	}
	if len(results) == 0 {
		return nil, core.NewNotFoundError("No child epics found", query)
	}
	return results, nil
}

// Run executes the whole pipeline. Issues created before a failure are left
// in place.
func (c *Cloner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if c.Tracker == nil {
		return nil, errors.New("tracker cannot be nil")
	}
	log := slog.With("op", "Run", "feature", opts.FeatureKey, "dryRun", opts.DryRun)

	c.printf("Inspecting JIRA API.\n")
	fields, err := ResolveFields(ctx, c.Tracker)
	if err != nil {
		return nil, err
	}

	c.printf("Confirming the Feature exists:\n")
	c.printf("  > %s\n", FeatureQuery(opts.FeatureKey))
	feature, err := FindFeature(ctx, c.Tracker, opts.FeatureKey)
	if err != nil {
		return nil, err
	}
	log.Debug("Found feature", "key", feature.Key, "summary", feature.Summary)

	c.printf("Gathering child epics:\n")
	c.printf("  > %s\n", EpicsQuery(feature.Key))
	epics, err := FindEpics(ctx, c.Tracker, feature.Key)
	if err != nil {
		return nil, err
	}
	log.Debug("Found child epics", "count", len(epics))

	res := &Result{Fields: fields}
	res.Feature, err = c.cloneIssue(ctx, kindFeature, feature, FeaturePayload(feature, opts.Summary), opts.DryRun)
	if err != nil {
		return res, err
	}

	parentKey := res.Feature.Key
	for _, epic := range epics {
		cl, err := c.cloneIssue(ctx, kindEpic, epic, EpicPayload(epic, fields, parentKey), opts.DryRun)
		if err != nil {
			return res, err
		}
		res.Epics = append(res.Epics, cl)
	}

	c.printf("Done.\n")
	return res, nil
}

// cloneIssue creates one clone and copies its labels, or prints what it would
// have done when dryRun is set.
func (c *Cloner) cloneIssue(ctx context.Context, kind string, src core.Issue, payload core.Payload, dryRun bool) (Clone, error) {
	cl := Clone{Source: src, Payload: payload, Labels: labelsToApply(src)}

	if dryRun {
		c.printf("Skipped creating clone of %s\n", src.Key)
		c.printf("  Would have created:\n")
		if err := writePayload(c.out(), payload); err != nil {
			return cl, err
		}
		if len(cl.Labels) > 0 {
			c.printf("  Would have applied labels: %s\n", strings.Join(cl.Labels, ", "))
		}
		if kind == kindFeature {
			cl.Key = PlaceholderKey
		}
		return cl, nil
	}

	created, err := c.Tracker.CreateIssue(ctx, payload)
	if err != nil {
		return cl, errors.Wrapf(err, "failed to create clone of %s %s", kind, src.Key)
	}
	cl.Key = created.Key
	cl.Created = true
	c.printf("Created %s %s, as a copy of %s\n", kind, created.Key, src.Key)
	if kind == kindFeature && c.BrowseURL != nil {
		c.printf("%s\n", c.BrowseURL(created.Key))
	}

	if len(cl.Labels) > 0 {
		if err := c.Tracker.UpdateLabels(ctx, created.Key, cl.Labels); err != nil {
			return cl, errors.Wrapf(err, "failed to copy labels of %s to %s", src.Key, created.Key)
		}
	}
	return cl, nil
}
