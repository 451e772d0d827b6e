package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/karthikram1909/refurbished-store/models"
)

// APIError is a non-2xx response from the store backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store API error (%d): %s", e.Status, e.Message)
}

// Client talks to the remote store backend. Token, when set, supplies the
// admin bearer credential to attach; it returns "" when no admin is logged
// in.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   func() string
}

func New(baseURL string, token func() string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Token:   token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach store backend: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse store response: %w", err)
	}
	return nil
}

// errorMessage pulls a message out of an error body when there is one.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return string(data)
}

// ListPhones fetches one page of the public catalog. totalPages is 0 when
// the backend responds with a bare array.
func (c *Client) ListPhones(ctx context.Context, page, limit int) ([]models.Phone, int, error) {
	var payload phoneListPayload
	path := fmt.Sprintf("/phones?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, 0, err
	}
	return payload.toModels(), payload.TotalPages, nil
}

func (c *Client) GetPhone(ctx context.Context, id string) (models.Phone, error) {
	var payload phonePayload
	if err := c.do(ctx, http.MethodGet, "/phones/"+url.PathEscape(id), nil, &payload); err != nil {
		return models.Phone{}, err
	}
	return payload.toModel(), nil
}

func (c *Client) ListOrdersByMobile(ctx context.Context, mobile string) ([]models.Order, error) {
	var payload []orderPayload
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(mobile), nil, &payload); err != nil {
		return nil, err
	}
	return toOrders(payload), nil
}

// CreateOrder books a single unit of one phone.
func (c *Client) CreateOrder(ctx context.Context, clientName, clientNumber, phoneID string) (models.Order, error) {
	body := map[string]string{
		"clientName":   clientName,
		"clientNumber": clientNumber,
		"phoneId":      phoneID,
	}
	var payload orderPayload
	if err := c.do(ctx, http.MethodPost, "/bookings", body, &payload); err != nil {
		return models.Order{}, err
	}
	return payload.toModel(), nil
}

// AdminLogin exchanges credentials for a bearer token.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var payload struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/login", body, &payload); err != nil {
		return "", err
	}
	if !payload.Success || payload.Token == "" {
		return "", &APIError{Status: http.StatusUnauthorized, Message: "admin login rejected"}
	}
	return payload.Token, nil
}

func (c *Client) ListAdminOrders(ctx context.Context) ([]models.Order, error) {
	var payload []orderPayload
	if err := c.do(ctx, http.MethodGet, "/admin/bookings", nil, &payload); err != nil {
		return nil, err
	}
	return toOrders(payload), nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	body := map[string]string{"status": string(status)}
	var payload orderPayload
	if err := c.do(ctx, http.MethodPut, "/admin/bookings/"+url.PathEscape(id), body, &payload); err != nil {
		return models.Order{}, err
	}
	return payload.toModel(), nil
}

func (c *Client) ListAdminPhones(ctx context.Context, page, limit int) ([]models.Phone, int, error) {
	var payload phoneListPayload
	path := fmt.Sprintf("/admin/phones?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, 0, err
	}
	return payload.toModels(), payload.TotalPages, nil
}

// PhoneForm is the multipart body for creating a listing. Image, when
// non-nil, is streamed through untouched; there is no image processing here.
type PhoneForm struct {
	Name        string
	Brand       string
	Price       int
	Description string
	Color       string
	Warranty    string
	Battery     string
	Kit         string
	ImageName   string
	Image       io.Reader
}

func (c *Client) CreatePhone(ctx context.Context, form PhoneForm) (models.Phone, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        form.Name,
		"brand":       form.Brand,
		"price":       strconv.Itoa(form.Price),
		"description": form.Description,
		"color":       form.Color,
		"warranty":    form.Warranty,
		"battery":     form.Battery,
		"kit":         form.Kit,
	}
	for key, value := range fields {
		if value == "" && key != "name" && key != "brand" && key != "price" {
			continue
		}
		if err := w.WriteField(key, value); err != nil {
			return models.Phone{}, err
		}
	}
	if form.Image != nil {
		part, err := w.CreateFormFile("image", form.ImageName)
		if err != nil {
			return models.Phone{}, err
		}
		if _, err := io.Copy(part, form.Image); err != nil {
			return models.Phone{}, err
		}
	}
	if err := w.Close(); err != nil {
		return models.Phone{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/admin/phones", &buf)
	if err != nil {
		return models.Phone{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.Phone{}, fmt.Errorf("failed to reach store backend: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Phone{}, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	var payload phonePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.Phone{}, fmt.Errorf("failed to parse store response: %w", err)
	}
	return payload.toModel(), nil
}

func (c *Client) DeletePhone(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/phones/"+url.PathEscape(id), nil, nil)
}
