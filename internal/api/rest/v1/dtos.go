package v1

// HealthStatusOK is the status reported by a healthy service
const HealthStatusOK = "ok"

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status        string `json:"status"`
	BannedIPCount int    `json:"banned_ip_count"`
}

