package dto

const (
	StatusRunning = "running"

	DatabaseNotAvailable   = "not available"
	DatabaseNotInitialized = "available but not initialized"
	DatabaseWorking        = "connected & working"
	DatabaseErrorPrefix    = "connected but error: "

	Set    = "set"
	NotSet = "not set"

	ConnectionConnected    = "connected"
	ConnectionNotConnected = "not connected"

	RootMessage = "VisitPazar Backend is running"
)

type RootResponse struct {
	Message string `json:"message"`
}

// DiagnosticsResponse is the body of GET /test.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
