package backend

import "context"

// Chat sends one user message to the assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, token, message string) (string, error) {
	var resp chatResponse
	if err := c.postJSON(ctx, EndpointChat, "/ai/chat/mlb", token, chatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}
