// Package client is an HTTP client for the notes API. It speaks the
// {statusCode, message, data} envelope and keeps the signed-in token pair in
// a local TokenStore, attaching the access token as a bearer header on note
// calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotSignedIn = errors.New("not signed in")

// APIError is a non-2xx envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    json.RawMessage `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// messageText flattens the envelope message, which is a string or a list of
// strings for multi-field validation failures.
func (e *envelope) messageText() string {
	var single string
	if json.Unmarshal(e.Message, &single) == nil {
		return single
	}
	var many []string
	if json.Unmarshal(e.Message, &many) == nil {
		return strings.Join(many, ", ")
	}
	return string(e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	store   *TokenStore
}

func New(baseURL string, store *TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		tokens, err := c.store.Load()
		if err != nil {
			return err
		}
		if tokens == nil || tokens.AccessToken == "" {
			return ErrNotSignedIn
		}
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("unexpected response from server: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{StatusCode: env.StatusCode, Message: env.messageText()}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}

	return nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	var data struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	}, false, &data)
	if err != nil {
		return "", err
	}

	return data.ID, nil
}

// SignIn authenticates and persists the returned token pair.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var data struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	}, false, &data)
	if err != nil {
		return err
	}

	return c.store.Save(Tokens{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
	})
}

// Refresh exchanges the stored refresh token for a new access token. The
// refresh token itself is kept; the server does not rotate it.
func (c *Client) Refresh(ctx context.Context) error {
	tokens, err := c.store.Load()
	if err != nil {
		return err
	}
	if tokens == nil || tokens.RefreshToken == "" {
		return ErrNotSignedIn
	}

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	err = c.do(ctx, http.MethodPost, "/auth/refresh-token", map[string]string{
		"refreshToken": tokens.RefreshToken,
	}, false, &data)
	if err != nil {
		return err
	}

	tokens.AccessToken = data.AccessToken

	return c.store.Save(*tokens)
}

func (c *Client) Logout() error {
	return c.store.Clear()
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	var note Note
	err := c.do(ctx, http.MethodPost, "/note/create-note", map[string]string{
		"title":   title,
		"content": content,
	}, true, &note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/note/get-notes", nil, true, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) SearchNotes(ctx context.Context, query string) ([]Note, error) {
	var notes []Note
	path := "/note/search-notes?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, "/note/get-note/"+id, nil, true, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote sends only the provided fields; nil leaves a field unchanged.
func (c *Client) UpdateNote(ctx context.Context, id string, title, content *string) (*Note, error) {
	body := map[string]string{}
	if title != nil {
		body["title"] = *title
	}
	if content != nil {
		body["content"] = *content
	}

	var note Note
	if err := c.do(ctx, http.MethodPut, "/note/update-note/"+id, body, true, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/note/delete-note/"+id, nil, true, nil)
}
