package admin

// RoleRequest is the body of POST /v1/admin/roles and PUT /v1/admin/roles/{id}.
type RoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type RoleResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type RoleListResponse struct {
	Version uint64         `json:"version"`
	Items   []RoleResponse `json:"items"`
}
