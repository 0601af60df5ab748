// Package admin contains the request and response bodies of the admin API.
package admin

// UserCreateRequest is the body of POST /v1/admin/users.
type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserUpdateRequest is the body of PUT /v1/admin/users/{id}. Any id in the
// body is ignored; the path wins.
type UserUpdateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type UserListResponse struct {
	Version uint64         `json:"version"`
	Items   []UserResponse `json:"items"`
}
