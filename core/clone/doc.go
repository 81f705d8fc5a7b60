// Package clone copies a Jira Feature and its child Epics.
//
// A run is a straight pipeline: resolve the custom field ids, find the source
// Feature, find its Epics, create the Feature clone and then one clone per
// Epic parented to it. In dry-run mode only the reads happen; every creation
// payload is printed instead of submitted and the Epics point at
// PlaceholderKey.
package clone
