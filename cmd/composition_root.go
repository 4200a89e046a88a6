package cmd

import (
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"freightmatch/internal/adapters/out/kafka"
	"freightmatch/internal/adapters/out/postgres"
	"freightmatch/internal/adapters/out/postgres/carrierdir"
	"freightmatch/internal/adapters/out/routing"
	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/ports"
)

const (
	// routeTimeout bounds one call to the external routing provider before
	// the estimator falls back to the haversine formula.
	routeTimeout = 2 * time.Second
	// routeCacheTTL is how long a cached route estimate stays fresh. Road
	// geometry does not change fast; fifteen minutes absorbs bursts of
	// candidate searches over the same lanes.
	routeCacheTTL = 15 * time.Minute
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carriers   ports.CarrierDirectory
	routes     ports.RouteEstimator
	publisher  ports.EventPublisher
	closers    []func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carriers:   carrierdir.NewGormCarrierDirectory(gormDB),
	}

	publisher := kafka.NewPublisher(strings.Split(configs.KafkaHost, ","), configs.KafkaEventsTopic, logger)
	root.publisher = publisher
	root.closers = append(root.closers, publisher.Close)

	var provider routing.Provider
	if configs.OSRMEndpoint != "" {
		provider = routing.NewOSRMClient(configs.OSRMEndpoint, routeTimeout)
	}

	var cache routing.Cache
	if configs.RedisAddr != "" {
		redisCache := routing.NewRedisEstimateCache(configs.RedisAddr, configs.RedisPassword, routeCacheTTL)
		cache = redisCache
		root.closers = append(root.closers, redisCache.Close)
	}

	root.routes = routing.NewEstimator(provider, cache, routeTimeout, logger)

	return root
}

// Close releases the outbound adapters that hold connections.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		_ = closeFn()
	}
}

func (c *CompositionRoot) CreatePostLoadCommandHandler() commands.PostLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostLoadCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateFindCandidatesCommandHandler() commands.FindCandidatesCommandHandler {
	var f commands.LoadMatchUoWFactory = FuncLoadMatchUoWFactory(func() commands.LoadMatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFindCandidatesCommandHandler(f, c.carriers, c.routes, c.publisher)
}

func (c *CompositionRoot) CreateMakeOfferCommandHandler() commands.MakeOfferCommandHandler {
	var f commands.LoadMatchUoWFactory = FuncLoadMatchUoWFactory(func() commands.LoadMatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMakeOfferCommandHandler(f, c.carriers, c.publisher)
}

func (c *CompositionRoot) CreateRespondToOfferCommandHandler() commands.RespondToOfferCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRespondToOfferCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRecordTrackingEventCommandHandler() commands.RecordTrackingEventCommandHandler {
	var f commands.ShipmentLoadUoWFactory = FuncShipmentLoadUoWFactory(func() commands.ShipmentLoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTrackingEventCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateExpireMatchesCommandHandler() commands.ExpireMatchesCommandHandler {
	var f commands.MatchUoWFactory = FuncMatchUoWFactory(func() commands.MatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireMatchesCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateExpireLoadsCommandHandler() commands.ExpireLoadsCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireLoadsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetActiveLoadsQueryHandler() queries.GetActiveLoadsQueryHandler {
	return queries.NewGetActiveLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadMatchesQueryHandler() queries.GetLoadMatchesQueryHandler {
	return queries.NewGetLoadMatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentEventsQueryHandler() queries.GetShipmentEventsQueryHandler {
	return queries.NewGetShipmentEventsQueryHandler(c.gormDB)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncMatchUoWFactory func() commands.MatchUoW

func (f FuncMatchUoWFactory) Create() commands.MatchUoW {
	return f()
}

type FuncLoadMatchUoWFactory func() commands.LoadMatchUoW

func (f FuncLoadMatchUoWFactory) Create() commands.LoadMatchUoW {
	return f()
}

type FuncShipmentLoadUoWFactory func() commands.ShipmentLoadUoW

func (f FuncShipmentLoadUoWFactory) Create() commands.ShipmentLoadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
