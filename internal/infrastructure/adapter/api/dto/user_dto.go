package dto

// UserResponse represents the API response for a user lookup
type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HealthResponse reports service and database status
type HealthResponse struct {
	Status   string      `json:"status"`
	Database string      `json:"database"`
	Pool     *PoolStatus `json:"pool,omitempty"`
}

// PoolStatus is the database connection pool usage
type PoolStatus struct {
	InUse     int  `json:"inUse"`
	MaxOpen   int  `json:"maxOpen"`
	Saturated bool `json:"saturated"`
}
