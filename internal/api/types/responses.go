package types

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
	Total     int64  `json:"total,omitempty"`
}

// AuthResponse is the register/login payload: the access token plus a summary
// of the authenticated user. The refresh token travels only in the cookie.
type AuthResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// UploadResponse is returned by the media upload relay.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// StatsResponse is the admin dashboard aggregate.
type StatsResponse struct {
	ProjectCount    int64 `json:"projectCount"`
	TotalMessages   int64 `json:"totalMessages"`
	UnreadMessages  int64 `json:"unreadMessages"`
	ResumeDownloads int64 `json:"resumeDownloads"`
}
