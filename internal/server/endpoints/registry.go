package endpoints

import "github.com/jackzampolin/tocscan/internal/api"

// All returns every registered endpoint: the health check and the one
// domain operation, scan, exposed as both an HTTP route and a CLI command
// (SPEC_FULL §12).
func All() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&ScanEndpoint{},
	}
}
