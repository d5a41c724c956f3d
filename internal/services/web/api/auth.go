package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an upstream session cookie and the user.
func (c *Client) Login(ctx context.Context, creds Credentials) (User, error) {
	body, err := c.call(ctx, OpLogin, http.MethodPost, "/login", creds)
	if err != nil {
		return User{}, err
	}
	return decodeUser(OpLogin, body)
}

// Signup creates an account; the upstream signs the new user in.
func (c *Client) Signup(ctx context.Context, signup Signup) (User, error) {
	body, err := c.call(ctx, OpSignup, http.MethodPost, "/signup", signup)
	if err != nil {
		return User{}, err
	}
	return decodeUser(OpSignup, body)
}

// Logout clears the upstream session cookie.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.call(ctx, OpLogout, http.MethodPost, "/logout", emptyBody)
	return err
}

// EditProfile applies a partial profile update. The response body is ignored;
// callers merge the edit into their own copy of the user.
func (c *Client) EditProfile(ctx context.Context, edit ProfileEdit) error {
	if edit.Skills == nil {
		edit.Skills = []string{}
	}
	_, err := c.call(ctx, OpEditProfile, http.MethodPatch, "/profile/edit", edit)
	return err
}
