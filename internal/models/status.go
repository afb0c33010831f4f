package models

// SeedResult reports the outcome of the seed operation
type SeedResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusReport describes process and store health.
// Store failures are carried as text here, never as error responses.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
