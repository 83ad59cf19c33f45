package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	firestorepb "google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"
)

const (
	// datastoreScope is the OAuth scope for Firestore access.
	datastoreScope = "https://www.googleapis.com/auth/datastore"

	defaultDatabaseID = "(default)"
	defaultCollection = "chat_history"

	// messagesCollection is the per-session subcollection holding one
	// document per turn.
	messagesCollection = "messages"
)

// ClientConfig configures the Firestore REST client.
type ClientConfig struct {
	// CredentialsJSON is the raw service-account JSON. Ignored when
	// Endpoint is set.
	CredentialsJSON []byte

	// ProjectID overrides the project_id from the credentials.
	ProjectID string

	// DatabaseID defaults to "(default)".
	DatabaseID string

	// CollectionName is the top-level collection keyed by session id.
	// Defaults to "chat_history".
	CollectionName string

	// Endpoint overrides the API endpoint and disables authentication
	// (tests, emulator).
	Endpoint string
}

// Client wraps the Firestore v1 REST service for one project/database.
type Client struct {
	svc        *firestorepb.Service
	projectID  string
	databaseID string
	collection string
}

// NewClient creates a Firestore client from a service-account credential.
// Credential problems are fatal here, before any request is served.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	var opts []option.ClientOption
	projectID := cfg.ProjectID

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	} else {
		creds, credProjectID, err := normalizeCredentials(cfg.CredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("invalid firestore credentials: %w", err)
		}
		if projectID == "" {
			projectID = credProjectID
		}

		jwtConfig, err := google.JWTConfigFromJSON(creds, datastoreScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
		}
		opts = append(opts, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	if projectID == "" {
		return nil, errors.New("firestore project id is not configured")
	}

	svc, err := firestorepb.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore service: %w", err)
	}

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = defaultDatabaseID
	}
	collection := cfg.CollectionName
	if collection == "" {
		collection = defaultCollection
	}

	return &Client{
		svc:        svc,
		projectID:  projectID,
		databaseID: databaseID,
		collection: collection,
	}, nil
}

// database returns "projects/{project}/databases/{database}".
func (c *Client) database() string {
	return fmt.Sprintf("projects/%s/databases/%s", c.projectID, c.databaseID)
}

// sessionPath returns the full resource name of the session document that
// parents the messages subcollection.
func (c *Client) sessionPath(sessionID string) string {
	return fmt.Sprintf("%s/documents/%s/%s", c.database(), c.collection, sessionID)
}

// commit applies the given writes in one atomic commit.
func (c *Client) commit(ctx context.Context, writes []*firestorepb.Write) error {
	_, err := c.svc.Projects.Databases.Documents.
		Commit(c.database(), &firestorepb.CommitRequest{Writes: writes}).
		Context(ctx).Do()
	return err
}

// listMessages returns every document of the session's messages
// subcollection ordered ascending by the timestamp field, following page
// tokens until exhausted.
func (c *Client) listMessages(ctx context.Context, sessionID string) ([]*firestorepb.Document, error) {
	var docs []*firestorepb.Document
	pageToken := ""

	for {
		call := c.svc.Projects.Databases.Documents.
			List(c.sessionPath(sessionID), messagesCollection).
			OrderBy("timestamp").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, err
		}

		docs = append(docs, resp.Documents...)
		if resp.NextPageToken == "" {
			return docs, nil
		}
		pageToken = resp.NextPageToken
	}
}

// normalizeCredentials validates the service-account JSON, repairs the
// private key when the deployment environment escaped its newlines (the
// FIREBASE_CONFIG convention), and extracts the project id.
func normalizeCredentials(raw []byte) ([]byte, string, error) {
	if len(raw) == 0 {
		return nil, "", errors.New("credentials JSON is empty")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, "", fmt.Errorf("credentials are not valid JSON: %w", err)
	}

	projectID, _ := fields["project_id"].(string)

	if key, ok := fields["private_key"].(string); ok && strings.Contains(key, `\n`) {
		fields["private_key"] = strings.ReplaceAll(key, `\n`, "\n")
		fixed, err := json.Marshal(fields)
		if err != nil {
			return nil, "", fmt.Errorf("failed to re-encode credentials: %w", err)
		}
		return fixed, projectID, nil
	}

	return raw, projectID, nil
}
