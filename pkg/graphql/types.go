package graphql

import (
	"net/http"

	"github.com/talentgraph/jobsbridge/pkg/logging"
)

// Config defines GraphQL client settings
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client executes queries against a GraphQL endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logging.Logger
}

// queryRequest is the wire body POSTed to the endpoint
type queryRequest struct {
	Query string `json:"query"`
}

// Result is the decoded JSON response body. The client does not interpret
// its fields; shape is owned by the upstream API.
type Result map[string]any
