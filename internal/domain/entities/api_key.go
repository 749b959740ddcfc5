package entities

import "time"

// API key permissions checked by the admin middleware.
const (
	PermCatalogRead  = "catalog:read"
	PermCatalogWrite = "catalog:write"
	PermAdmin        = "admin"
)

// APIKey represents a stored admin API key. Only the SHA-256 hash of the
// full key is persisted; KeyPrefix exists for lookup and KeyMasked for
// display.
type APIKey struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	KeyPrefix   string     `json:"keyPrefix"`
	KeyHash     string     `json:"-"`
	KeyMasked   string     `json:"keyMasked"`
	Permissions []string   `json:"permissions"`
	IsActive    bool       `json:"isActive"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// HasPermission reports whether the key grants a permission. The admin
// permission implies everything else.
func (k *APIKey) HasPermission(perm string) bool {
	for _, p := range k.Permissions {
		if p == perm || p == PermAdmin {
			return true
		}
	}
	return false
}

// CreateAPIKeyInput is the input for issuing a new key.
type CreateAPIKeyInput struct {
	Name        string     `json:"name" binding:"required"`
	Permissions []string   `json:"permissions" binding:"required"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// CreateAPIKeyResponse carries the plaintext key, shown exactly once.
type CreateAPIKeyResponse struct {
	Key    APIKey `json:"key"`
	Secret string `json:"secret"`
}
