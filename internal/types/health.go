package types

// HealthStatus is the /health payload. Passthrough value, no invariants
// beyond schema match.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}
