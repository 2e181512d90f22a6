package gdrive

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client wraps the Google Drive API service.
type Client struct {
	service *drive.Service
}

// NewClientFromCredentialsJSON creates a Drive client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse drive credentials: %w", err)
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClient creates a Drive client from raw client options. Used in tests to
// point the service at a fake endpoint.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// FindFolder returns the ID of the first non-trashed folder with the exact
// name under the given parent, or "" when none exists. Ties between folders
// sharing a name are broken by Drive's own result ordering.
func (c *Client) FindFolder(ctx context.Context, name, parentID string) (string, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQueryValue(name), parentID, folderMimeType)

	list, err := c.service.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(10).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list drive folders: %w", err)
	}

	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

// CreateFolder creates a folder under the given parent and returns its ID.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}

	created, err := c.service.Files.Create(folder).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create drive folder: %w", err)
	}
	return created.Id, nil
}

// MoveFile relocates a file into the given folder.
func (c *Client) MoveFile(ctx context.Context, fileID, folderID string) error {
	_, err := c.service.Files.Update(fileID, nil).
		AddParents(folderID).
		RemoveParents("root").
		Fields("id, parents").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to move drive file: %w", err)
	}
	return nil
}

// escapeQueryValue escapes a string literal for the Drive files.list query
// language.
func escapeQueryValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
