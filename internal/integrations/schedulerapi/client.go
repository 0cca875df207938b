package schedulerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент HTTP API сервиса бронирования.
// Используется сидером расписания и внешними интеграциями.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateRoom создает аудиторию.
// При существующем имени возвращает ErrDuplicateRoom.
func (c *Client) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*Room, error) {
	var room Room
	if err := c.postJSON(ctx, "/api/v1/rooms", req, http.StatusCreated, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateBooking бронирует слот.
// При занятом слоте возвращает ErrConflict.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.postJSON(ctx, "/api/v1/bookings", req, http.StatusCreated, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListRooms возвращает все аудитории
func (c *Client) ListRooms(ctx context.Context) ([]*Room, error) {
	url := c.baseURL + "/api/v1/rooms"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var payload struct {
		Rooms []*Room `json:"rooms"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return payload.Rooms, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, wantStatus int, dst interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// decodeError маппит статус-коды сервиса на ошибки клиента
func (c *Client) decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	_ = json.Unmarshal(body, &errResp)
	message := errResp.Error
	if message == "" {
		message = string(body)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusConflict:
		// Конфликт слота и дубликат имени аудитории приходят одним кодом;
		// различаем по тексту ошибки
		if message == "room with this name already exists" {
			return fmt.Errorf("%w: %s", ErrDuplicateRoom, message)
		}
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, message)
	}
}
