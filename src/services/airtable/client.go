package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.airtable.com/v0"

var (
	// ErrUnauthorized means the stored access token was rejected; the
	// owner has to go through the Airtable login again.
	ErrUnauthorized = errors.New("airtable: access token invalid or expired")
	ErrNotFound     = errors.New("airtable: not found")
)

// Client is a thin Airtable REST client bound to one access token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, DefaultBaseURL)
}

func NewClientWithBaseURL(token, baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Base is one Airtable base the token can see.
type Base struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PermissionLevel string `json:"permissionLevel,omitempty"`
}

type BasesResponse struct {
	Bases  []Base `json:"bases"`
	Offset string `json:"offset,omitempty"`
}

// Choice is one selectable option of an Airtable select field.
type Choice struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type FieldOptions struct {
	Choices []Choice `json:"choices,omitempty"`
}

// TableField is a field descriptor from the table metadata API.
type TableField struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Options *FieldOptions `json:"options,omitempty"`
}

// Table is a table descriptor from the base metadata API.
type Table struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	PrimaryFieldID string       `json:"primaryFieldId,omitempty"`
	Fields         []TableField `json:"fields"`
}

type TablesResponse struct {
	Tables []Table `json:"tables"`
}

// WhoAmI is the token introspection response.
type WhoAmI struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

type recordResponse struct {
	ID string `json:"id"`
}

// ListBases returns the bases the token grants access to.
func (c *Client) ListBases(ctx context.Context) (*BasesResponse, error) {
	var out BasesResponse
	if err := c.get(ctx, "/meta/bases", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTables returns the table descriptors of a base.
func (c *Client) ListTables(ctx context.Context, baseID string) (*TablesResponse, error) {
	var out TablesResponse
	if err := c.get(ctx, "/meta/bases/"+baseID+"/tables", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTableFields returns one table's descriptor. Some Airtable plans 404
// on the single-table endpoint, so a miss falls back to scanning the
// base's table listing.
func (c *Client) GetTableFields(ctx context.Context, baseID, tableID string) (*Table, error) {
	var table Table
	err := c.get(ctx, "/meta/bases/"+baseID+"/tables/"+tableID, &table)
	if err == nil {
		return &table, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	tables, err := c.ListTables(ctx, baseID)
	if err != nil {
		return nil, err
	}
	for i := range tables.Tables {
		if tables.Tables[i].ID == tableID {
			return &tables.Tables[i], nil
		}
	}
	return nil, fmt.Errorf("table %s not found in base %s: %w", tableID, baseID, ErrNotFound)
}

// CreateRecord writes one record into a table and returns the new record
// id. Fields are keyed by Airtable field id.
func (c *Client) CreateRecord(ctx context.Context, baseID, tableID string, fields map[string]any) (string, error) {
	var out recordResponse
	body := map[string]any{"fields": fields}
	if err := c.post(ctx, "/"+baseID+"/"+tableID, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Whoami resolves the token's Airtable user identity.
func (c *Client) Whoami(ctx context.Context) (*WhoAmI, error) {
	var out WhoAmI
	if err := c.get(ctx, "/meta/whoami", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("airtable: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("airtable: decode response: %w", err)
	}
	return nil
}
