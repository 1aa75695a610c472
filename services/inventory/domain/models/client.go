package models

import "time"

// Client is a customer who places orders.
type Client struct {
	ID        int64
	Name      Name
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient constructs a Client with the given name and address.
func NewClient(name Name, address string) *Client {
	return &Client{
		Name:    name,
		Address: address,
	}
}
