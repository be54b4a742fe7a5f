package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by the HR API client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RemoteAPIChecker struct {
	api     Pinger
	timeout time.Duration
}

func NewRemoteAPIChecker(api Pinger, timeout time.Duration) *RemoteAPIChecker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RemoteAPIChecker{api: api, timeout: timeout}
}

func (c *RemoteAPIChecker) Name() string { return "hr_api" }

func (c *RemoteAPIChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.api.Ping(ctx)
}
