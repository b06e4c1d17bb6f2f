package api

import "context"

// AdminUser is the account block returned by a successful login.
type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// LoginResponse is the `POST /admin/login` response.
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    AdminUser `json:"user"`
}

// Login exchanges admin credentials for a bearer token. Failed
// credentials surface the server's error message; there is no
// client-side fallback pair.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.Post(ctx, "/admin/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
