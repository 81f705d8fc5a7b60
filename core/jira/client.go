// Package jira talks to a Jira Server/Data Center instance through go-jira,
// authenticating with a personal access token sent as a bearer token.
package jira

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/andygrunwald/go-jira"
	"github.com/opensdd/feature-clone/core"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const createIssuePath = "rest/api/2/issue"

// Client implements the tracker operations a clone run needs.
type Client struct {
	baseURL string
	client  *jira.Client
}

// NewClient returns a Client for baseURL authenticating every request with token.
func NewClient(ctx context.Context, baseURL, token string) (*Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return newClient(baseURL, oauth2.NewClient(ctx, ts))
}

func newClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("jira base URL cannot be empty")
	}
	c, err := jira.NewClient(httpClient, baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create Jira client")
	}
	return &Client{baseURL: baseURL, client: c}, nil
}

// BrowseURL returns the web UI link of the issue with the given key.
func (c *Client) BrowseURL(key string) string {
	return fmt.Sprintf("%s/browse/%s", strings.TrimSuffix(c.baseURL, "/"), key)
}

// ListFields returns the full field catalog of the instance.
func (c *Client) ListFields(ctx context.Context) ([]core.Field, error) {
	list, _, err := c.client.Field.GetListWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jira fields")
	}
	slog.Debug("Jira fields fetched", "count", len(list))

	fields := make([]core.Field, 0, len(list))
	for _, f := range list {
		fields = append(fields, core.Field{ID: f.ID, Name: f.Name})
	}
	return fields, nil
}

// Search runs a JQL query and returns the first page of matching issues.
func (c *Client) Search(ctx context.Context, jql string) ([]core.Issue, error) {
	slog.Debug("Searching Jira issues", "jql", jql)
	found, _, err := c.client.Issue.SearchWithContext(ctx, jql, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "jira search failed for query %q", jql)
	}
	slog.Debug("Jira issues fetched", "jql", jql, "count", len(found))

	issues := make([]core.Issue, 0, len(found))
	for i := range found {
		issues = append(issues, toIssue(&found[i]))
	}
	return issues, nil
}

// createIssueResponse is the body Jira answers a create request with.
type createIssueResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssue creates an issue from payload and returns it with its new key.
// The request is built by hand so custom field ids reach Jira untouched.
func (c *Client) CreateIssue(ctx context.Context, payload core.Payload) (core.Issue, error) {
	body := map[string]any{"fields": wireFields(payload)}
	req, err := c.client.NewRequestWithContext(ctx, http.MethodPost, createIssuePath, body)
	if err != nil {
		return core.Issue{}, errors.Wrap(err, "failed to create jira request")
	}

	var created createIssueResponse
	resp, err := c.client.Do(req, &created)
	if err != nil {
		return core.Issue{}, errors.Wrap(jira.NewJiraError(resp, err), "failed to create jira issue")
	}
	if created.Key == "" {
		return core.Issue{}, errors.New("jira create response carried no issue key")
	}
	slog.Debug("Jira issue created", "key", created.Key, "id", created.ID)

	return core.Issue{
		Key:         created.Key,
		Project:     stringValue(payload[core.FieldProject]),
		Type:        stringValue(payload[core.FieldIssueType]),
		Summary:     stringValue(payload[core.FieldSummary]),
		Description: stringValue(payload[core.FieldDescription]),
	}, nil
}

// UpdateLabels replaces the labels of the issue with the given key.
func (c *Client) UpdateLabels(ctx context.Context, key string, labels []string) error {
	data := map[string]any{
		"fields": map[string]any{
			core.FieldLabels: labels,
		},
	}
	resp, err := c.client.Issue.UpdateIssueWithContext(ctx, key, data)
	if err != nil {
		return errors.Wrapf(jira.NewJiraError(resp, err), "failed to update labels of %s", key)
	}
	slog.Debug("Jira labels updated", "key", key, "labels", labels)
	return nil
}

// wireFields converts a payload into the shape the create endpoint expects:
// project by key and issue type by name.
func wireFields(payload core.Payload) map[string]any {
	fields := make(map[string]any, len(payload))
	for k, v := range payload {
		switch k {
		case core.FieldProject:
			fields[k] = map[string]any{"key": v}
		case core.FieldIssueType:
			fields[k] = map[string]any{"name": v}
		default:
			fields[k] = v
		}
	}
	return fields
}

func toIssue(src *jira.Issue) core.Issue {
	issue := core.Issue{Key: src.Key}
	f := src.Fields
	if f == nil {
		return issue
	}
	issue.Project = f.Project.Key
	issue.Type = f.Type.Name
	issue.Summary = f.Summary
	issue.Description = f.Description
	if len(f.Labels) > 0 {
		issue.Labels = append([]string(nil), f.Labels...)
	}
	if len(f.Unknowns) > 0 {
		issue.Custom = make(map[string]any, len(f.Unknowns))
		for k, v := range f.Unknowns {
			issue.Custom[k] = v
		}
	}
	return issue
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
