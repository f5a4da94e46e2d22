package model

// User is the acting client-session identity. There is no authentication in
// this service; the id arrives on each request and is trusted as-is.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email,omitempty"`
	Avatar  string   `json:"avatar,omitempty"`
	Friends []Friend `json:"friends,omitempty"`
}
