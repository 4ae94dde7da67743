package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portal_servicos/internal/usecase/interfaces"
)

var ErrUserNotFound = errors.New("directory user not found")

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Document  string `json:"document"`
	CompanyID string `json:"company_id"`
}

type staffResponse struct {
	ID string `json:"id"`
}

// HTTPDirectory reads users and company staff from the account service.
type HTTPDirectory struct {
	BaseURL string
	token   string
	client  *http.Client
}

var _ interfaces.IDirectory = (*HTTPDirectory)(nil)

func NewHTTPDirectory(baseURL, token string) *HTTPDirectory {
	return &HTTPDirectory{
		BaseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *HTTPDirectory) GetUser(ctx context.Context, id string) (interfaces.DirectoryUser, error) {
	var out userResponse
	status, err := d.get(ctx, "/users/"+url.PathEscape(id), &out)
	if err != nil {
		return interfaces.DirectoryUser{}, err
	}
	if status == http.StatusNotFound {
		return interfaces.DirectoryUser{}, fmt.Errorf("%w: id=%s", ErrUserNotFound, id)
	}
	return interfaces.DirectoryUser{
		ID:        out.ID,
		Name:      out.Name,
		Email:     out.Email,
		Document:  out.Document,
		CompanyID: out.CompanyID,
	}, nil
}

func (d *HTTPDirectory) ListStaff(ctx context.Context, companyID string) ([]string, error) {
	var out []staffResponse
	status, err := d.get(ctx, "/companies/"+url.PathEscape(companyID)+"/staff", &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	ids := make([]string, 0, len(out))
	for _, s := range out {
		if s.ID != "" {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

// get decodes a 200 body into dst. 404 is returned as a status, not an error.
func (d *HTTPDirectory) get(ctx context.Context, path string, dst any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call directory: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return resp.StatusCode, fmt.Errorf("decode directory response: %w", err)
		}
		return resp.StatusCode, nil
	case http.StatusNotFound:
		return resp.StatusCode, nil
	default:
		return resp.StatusCode, fmt.Errorf("directory returned status %d for %s", resp.StatusCode, path)
	}
}
