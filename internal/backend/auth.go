package backend

import "context"

// Login exchanges credentials for an opaque bearer token. Public endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.postJSON(ctx, EndpointLogin, "/auth/login", "", loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. Public endpoint.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.postJSON(ctx, EndpointRegister, "/auth/register", "", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
}
