package graphqlv1

import (
	"github.com/graphql-go/graphql"
)

var logFieldTypes = []struct {
	name string
	typ  graphql.Output
}{
	{"id", graphql.NewNonNull(graphql.ID)},
	{"TIMESTAMP", graphql.NewNonNull(graphql.String)},
	{"REQUEST_ID", graphql.String},
	{"METHOD", graphql.String},
	{"PATH", graphql.String},
	{"QUERY_PARAMETERS", graphql.String},
	{"PROTOCOL", graphql.String},
	{"SOURCE_IP", graphql.String},
	{"USER_AGENT", graphql.String},
	{"REFERER", graphql.String},
	{"USER_ID", graphql.String},
	{"SESSION_ID", graphql.String},
	{"REQUEST_HEADERS", graphql.String},
	{"REQUEST_BODY", graphql.String},
	{"CONTENT_LENGTH", graphql.Int},
	{"STATUS_CODE", graphql.Int},
	{"RESPONSE_TIME_MS", graphql.Int},
	{"RESPONSE_HEADERS", graphql.String},
	{"RESPONSE_BODY", graphql.String},
	{"LOG_LEVEL", graphql.String},
	{"SERVICE_NAME", graphql.String},
	{"ENV", graphql.String},
	{"ERROR_MESSAGE", graphql.String},
	{"STACK_TRACE", graphql.String},
	{"created_at", graphql.NewNonNull(graphql.String)},
}

func newLogType() *graphql.Object {
	fields := graphql.Fields{}
	for _, f := range logFieldTypes {
		fields[f.name] = &graphql.Field{Type: f.typ}
	}
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   "Log",
		Fields: fields,
	})
}

func newCountType(name, keyField string, keyType graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			keyField: &graphql.Field{Type: graphql.NewNonNull(keyType)},
			"count":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

func nonNullList(of graphql.Type) graphql.Output {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(of)))
}

func singleField(name, field string, typ graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			field: &graphql.Field{Type: graphql.NewNonNull(typ)},
		},
	})
}

// NewSchema builds the query and mutation roots around the controller's resolvers.
func NewSchema(c *Controller) (graphql.Schema, error) {
	logType := newLogType()

	logsConnectionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LogsConnection",
		Fields: graphql.Fields{
			"logs":              &graphql.Field{Type: nonNullList(logType)},
			"total_count":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"has_next_page":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"has_previous_page": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	logStatsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LogStats",
		Fields: graphql.Fields{
			"total_logs":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"logs_by_level":   &graphql.Field{Type: nonNullList(newCountType("LevelCount", "level", graphql.String))},
			"logs_by_service": &graphql.Field{Type: nonNullList(newCountType("ServiceCount", "service", graphql.String))},
			"logs_by_status":  &graphql.Field{Type: nonNullList(newCountType("StatusCount", "status_code", graphql.Int))},
			"logs_by_env":     &graphql.Field{Type: nonNullList(newCountType("EnvCount", "env", graphql.String))},
		},
	})

	counterType := singleField("Counter", "value", graphql.Int)
	helloType := singleField("HelloResponse", "message", graphql.String)
	pingType := singleField("PingResponse", "response", graphql.String)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.NewNonNull(helloType),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: c.Hello,
			},
			"ping": &graphql.Field{
				Type:    graphql.NewNonNull(pingType),
				Resolve: c.Ping,
			},
			"counter": &graphql.Field{
				Type:    graphql.NewNonNull(counterType),
				Resolve: c.Counter,
			},
			"logs": &graphql.Field{
				Type: graphql.NewNonNull(logsConnectionType),
				Args: graphql.FieldConfigArgument{
					"first":        &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: defaultFirst},
					"offset":       &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"log_level":    &graphql.ArgumentConfig{Type: graphql.String},
					"service_name": &graphql.ArgumentConfig{Type: graphql.String},
					"status_code":  &graphql.ArgumentConfig{Type: graphql.Int},
					"env":          &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: c.Logs,
			},
			"log": &graphql.Field{
				Type: logType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: c.Log,
			},
			"logStats": &graphql.Field{
				Type:    graphql.NewNonNull(logStatsType),
				Resolve: c.LogStats,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"incrementCounter": &graphql.Field{
				Type:    graphql.NewNonNull(counterType),
				Resolve: c.IncrementCounter,
			},
			"setCounter": &graphql.Field{
				Type: graphql.NewNonNull(counterType),
				Args: graphql.FieldConfigArgument{
					"value": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: c.SetCounter,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
