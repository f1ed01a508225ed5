package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is the error body the server sends for rejected requests.
type apiError struct {
	Status  int
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return e.Message
}

type loginResult struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Success  bool   `json:"success"`
}

type itemView struct {
	ID       uint            `json:"id"`
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

type quoteView struct {
	Item     itemView        `json:"item"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type receiptView struct {
	Item  itemView        `json:"item"`
	Total decimal.Decimal `json:"total"`
	Sale  struct {
		ItemsSold string `json:"items_sold"`
	} `json:"sale"`
}

type saleView struct {
	ID        uint            `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	ItemsSold string          `json:"items_sold"`
}

type reportView struct {
	Expenses []struct {
		Date        string `json:"date"`
		Amount      string `json:"amount"`
		Category    string `json:"category"`
		Description string `json:"description"`
	} `json:"expenses"`
	Inventory []struct {
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
		Cost     string `json:"cost"`
	} `json:"inventory"`
	Sales []struct {
		Date      string `json:"date"`
		Amount    string `json:"amount"`
		ItemsSold string `json:"items_sold"`
	} `json:"sales"`
}

func (c *apiClient) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cafe server not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope struct {
			Error apiError `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		envelope.Error.Status = resp.StatusCode
		return &envelope.Error
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) login(username, password string) (*loginResult, error) {
	var res loginResult
	err := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *apiClient) reports() (*reportView, error) {
	var res struct {
		Data reportView `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/v1/reports", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *apiClient) quote(itemID uint, quantity int) (*quoteView, error) {
	var res struct {
		Data quoteView `json:"data"`
	}
	path := fmt.Sprintf("/api/v1/inventory/%d/quote?quantity=%d", itemID, quantity)
	if err := c.do(http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *apiClient) purchase(itemID uint, quantity int, confirmed bool) (*receiptView, error) {
	var res struct {
		Data receiptView `json:"data"`
	}
	path := fmt.Sprintf("/api/v1/inventory/%d/purchase", itemID)
	err := c.do(http.MethodPost, path, map[string]any{
		"quantity":          quantity,
		"payment_confirmed": confirmed,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *apiClient) inventory() ([]itemView, error) {
	var res struct {
		Data []itemView `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/v1/inventory", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// recordSale posts a manual sale. amount is sent as typed; the server validates it.
func (c *apiClient) recordSale(date, amount, itemsSold string) (*saleView, error) {
	var res struct {
		Data saleView `json:"data"`
	}
	err := c.do(http.MethodPost, "/api/v1/sales", map[string]string{
		"date":       date,
		"amount":     amount,
		"items_sold": itemsSold,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}
