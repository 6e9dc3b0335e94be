// Package client provides an HTTP client for the ressido REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ressido/ressido/internal/occupancy"
	"github.com/ressido/ressido/internal/onboarding"
	"github.com/ressido/ressido/internal/property"
	"github.com/ressido/ressido/internal/structure"
	"github.com/ressido/ressido/internal/tenant"
)

// Client is an HTTP client for the ressido API.
type Client struct {
	baseURL    string
	identity   string
	httpClient *http.Client
}

// New creates a new API client for an identity.
func New(baseURL, identity string) *Client {
	return &Client{
		baseURL:    baseURL,
		identity:   identity,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListProperties returns the identity's properties.
func (c *Client) ListProperties() ([]*property.Property, error) {
	var props []*property.Property
	if err := c.get("/api/properties", &props); err != nil {
		return nil, err
	}
	return props, nil
}

// GetProperty returns one property.
func (c *Client) GetProperty(id string) (*property.Property, error) {
	var p property.Property
	if err := c.get("/api/properties/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SubmitDraft submits an onboarding draft; the server runs the gate.
func (c *Client) SubmitDraft(details onboarding.Details, tree structure.Tree) (*property.Property, error) {
	body := map[string]interface{}{"details": details, "structure": tree}
	var p property.Property
	if err := c.post("/api/properties", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProperty replaces a stored property.
func (c *Client) UpdateProperty(p *property.Property) error {
	return c.put("/api/properties/"+p.ID, p)
}

// SelectProperty starts the selection transition.
func (c *Client) SelectProperty(id string) error {
	return c.post("/api/properties/"+id+"/select", nil, nil)
}

// CurrentSelection is the server's current-selection state.
type CurrentSelection struct {
	Property *property.Property `json:"property"`
	Loading  bool               `json:"loading"`
}

// Current returns the selected property and its loading flag.
func (c *Client) Current() (*CurrentSelection, error) {
	var cur CurrentSelection
	if err := c.get("/api/current", &cur); err != nil {
		return nil, err
	}
	return &cur, nil
}

// Blueprint is the occupancy view of one property.
type Blueprint struct {
	Floors []occupancy.FloorPlan `json:"floors"`
	Stats  occupancy.Stats       `json:"stats"`
}

// GetBlueprint returns the occupancy view for a property.
func (c *Client) GetBlueprint(id string) (*Blueprint, error) {
	var bp Blueprint
	if err := c.get("/api/properties/"+id+"/blueprint", &bp); err != nil {
		return nil, err
	}
	return &bp, nil
}

// ListTenants returns a property's tenants.
func (c *Client) ListTenants(propertyID string) ([]*tenant.Tenant, error) {
	var tenants []*tenant.Tenant
	if err := c.get("/api/properties/"+propertyID+"/tenants", &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// AddTenant registers a tenant against a property.
func (c *Client) AddTenant(propertyID string, t *tenant.Tenant) (*tenant.Tenant, error) {
	var saved tenant.Tenant
	if err := c.post("/api/properties/"+propertyID+"/tenants", t, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("PUT", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

// do executes an HTTP request with the identity header and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.identity != "" {
		req.Header.Set("X-Ressido-Identity", c.identity)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error    string   `json:"error"`
			Messages []string `json:"messages"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			if len(errResp.Messages) > 0 {
				return fmt.Errorf("%s: %v", errResp.Error, errResp.Messages)
			}
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
