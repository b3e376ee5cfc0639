package graphqlv1

import (
	"errors"
	"strconv"

	logginghelper "github.com/Egor213/LogiGraph/internal/controller/common/logging"
	"github.com/Egor213/LogiGraph/internal/controller/graphql/validators"
	"github.com/Egor213/LogiGraph/internal/metrics"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/graphql-go/graphql"
	log "github.com/sirupsen/logrus"
)

const defaultFirst = repotypes.DefaultLimit

var ErrStorageUnavailable = errors.New("storage unavailable")

type Controller struct {
	services *service.Services
	counters *metrics.Counters
}

func NewController(services *service.Services, cnt *metrics.Counters) *Controller {
	return &Controller{
		services: services,
		counters: cnt,
	}
}

// fail counts the failed operation and hides storage details from the client.
func (c *Controller) fail(operation string, err error) error {
	c.counters.GraphQLRequests.Inc(operation, "failed")
	logginghelper.LogError(operation, err)
	if errors.Is(err, service.ErrStorage) {
		return ErrStorageUnavailable
	}
	return err
}

func (c *Controller) ok(operation string) {
	c.counters.GraphQLRequests.Inc(operation, "ok")
}

func (c *Controller) Logs(p graphql.ResolveParams) (any, error) {
	const operation = "logs"

	page, err := validators.ValidatePage(
		intArg(p.Args, "first", defaultFirst),
		intArg(p.Args, "offset", 0),
	)
	if err != nil {
		return nil, c.fail(operation, err)
	}
	filter := NewLogFilterFromArgs(p.Args)

	logginghelper.LogQuery(operation, logginghelper.LogFilter(filter, page))

	result, err := c.services.Log.GetLogs(p.Context, filter, page)
	if err != nil {
		return nil, c.fail(operation, err)
	}

	c.ok(operation)
	return ToLogsConnection(result), nil
}

func (c *Controller) Log(p graphql.ResolveParams) (any, error) {
	const operation = "log"

	raw, _ := p.Args["id"].(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.WithField("id", raw).Debug("Log id is not an integer")
		c.ok(operation)
		return nil, nil
	}

	logginghelper.LogQuery(operation, log.Fields{"id": id})

	rec, err := c.services.Log.GetLog(p.Context, id)
	if err != nil {
		return nil, c.fail(operation, err)
	}

	c.ok(operation)
	if rec == nil {
		return nil, nil
	}
	return ToLogMap(*rec), nil
}

func (c *Controller) LogStats(p graphql.ResolveParams) (any, error) {
	const operation = "logStats"

	stats, err := c.services.Log.GetStats(p.Context)
	if err != nil {
		return nil, c.fail(operation, err)
	}

	c.ok(operation)
	return ToLogStats(stats), nil
}
