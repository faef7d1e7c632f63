package request

// UpdateSettingsRequest represents a settings upsert request
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}
