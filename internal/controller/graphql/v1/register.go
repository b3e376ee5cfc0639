package graphqlv1

import (
	"github.com/Egor213/LogiGraph/internal/metrics"
	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/graphql-go/handler"
)

// NewHandler serves the schema over HTTP with GraphiQL enabled for browsers.
func NewHandler(services *service.Services, counters *metrics.Counters) (*handler.Handler, error) {
	schema, err := NewSchema(NewController(services, counters))
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}
