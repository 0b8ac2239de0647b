package domain

import (
	"fmt"
	"strings"
)

// TransportError is an HTTP-level failure reaching the data provider.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("morpho API error %d: %s", e.StatusCode, e.Body)
}

// GraphQLError is one entry of a GraphQL top-level errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

// RemoteQueryError means the provider was reachable but rejected the query.
// It takes precedence over any data in the same response.
type RemoteQueryError struct {
	Errors []GraphQLError
}

func (e *RemoteQueryError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return "graphql errors: " + strings.Join(msgs, "; ")
}

// MissingVaultDataError means the query succeeded but the vault resolved to
// nothing. Terminal for the cycle; market absence is not.
type MissingVaultDataError struct {
	Address string
}

func (e *MissingVaultDataError) Error() string {
	return fmt.Sprintf("no vault data for %s", e.Address)
}

// DeliveryError means the messaging provider rejected or could not deliver
// the rendered message.
type DeliveryError struct {
	Chat string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("send to %s: %v", e.Chat, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// ConfigurationError means required settings were absent at startup.
// Always fatal before any scheduling begins.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}
