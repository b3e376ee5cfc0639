package graphqlv1

import (
	logginghelper "github.com/Egor213/LogiGraph/internal/controller/common/logging"
	"github.com/graphql-go/graphql"
)

func counterValue(v int32) map[string]any {
	return map[string]any{"value": int(v)}
}

func (c *Controller) Counter(graphql.ResolveParams) (any, error) {
	c.ok("counter")
	return counterValue(c.services.Counter.Get()), nil
}

func (c *Controller) IncrementCounter(graphql.ResolveParams) (any, error) {
	v := c.services.Counter.Increment()
	logginghelper.LogMutation("incrementCounter", v)
	c.ok("incrementCounter")
	return counterValue(v), nil
}

func (c *Controller) SetCounter(p graphql.ResolveParams) (any, error) {
	value, _ := p.Args["value"].(int)
	v := c.services.Counter.Set(int32(value))
	logginghelper.LogMutation("setCounter", v)
	c.ok("setCounter")
	return counterValue(v), nil
}

func (c *Controller) Hello(p graphql.ResolveParams) (any, error) {
	name, _ := p.Args["name"].(string)
	c.ok("hello")
	return map[string]any{"message": c.services.Greeter.Hello(name)}, nil
}

func (c *Controller) Ping(graphql.ResolveParams) (any, error) {
	c.ok("ping")
	return map[string]any{"response": c.services.Greeter.Ping()}, nil
}
