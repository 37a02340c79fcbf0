package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const roomsPath = "/api/room"

var ErrUnexpectedStatus = errors.New("unexpected status")

type Options struct {
	BaseURL    string
	Timeout    time.Duration // 10s
	RetryCount int           // повторы только на 5xx и сетевые ошибки
}

// Client — HTTP клиент списка комнат.
type Client struct {
	http *resty.Client
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{http: rc}
}

func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var (
		rooms  []Room
		errOut errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&rooms).
		SetError(&errOut).
		Get(roomsPath)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", roomsPath, err)
	}
	if resp.IsError() || resp.StatusCode() != http.StatusOK {
		msg := errOut.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), msg)
	}

	if rooms == nil {
		rooms = []Room{}
	}
	return rooms, nil
}
