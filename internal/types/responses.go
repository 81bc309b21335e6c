package types

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProjectAdmin is the owner info joined onto a project detail response.
type ProjectAdmin struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProjectResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date,omitempty"`
	EndDate     string        `json:"end_date,omitempty"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	AdminID     uint          `json:"admin_id"`
	Admin       *ProjectAdmin `json:"admin,omitempty"`
}
