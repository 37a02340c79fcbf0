package client

import "time"

type Room struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	Host          string    `json:"host"`
	GuestCanPause bool      `json:"guest_can_pause"`
	VotesToSkip   int32     `json:"votes_to_skip"`
	CreatedAt     time.Time `json:"created_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}
