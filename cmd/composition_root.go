package cmd

import (
	"context"
	"io"

	"restaurant/internal/adapters/in/console"
	"restaurant/internal/adapters/out/jsonfile"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/labstack/gommon/log"
)

type CompositionRoot struct {
	config  Config
	logger  *log.Logger
	store   ports.OrderStore
	pending *order.PendingList
}

// NewCompositionRoot loads the pending store once for the session. Duplicate
// ids in the stored data are dropped with a warning, keeping the first.
func NewCompositionRoot(ctx context.Context, config Config, logger *log.Logger) CompositionRoot {
	store := jsonfile.NewStore(config.DataDir, logger)

	pending, dropped := order.NewPendingList(store.Load(ctx, config.PendingStore))
	for _, o := range dropped {
		logger.Warnf("store %s: dropped duplicate order %s", config.PendingStore, o.ID())
	}

	return CompositionRoot{
		config:  config,
		logger:  logger,
		store:   store,
		pending: pending,
	}
}

func (c *CompositionRoot) storeNames() commands.StoreNames {
	return commands.StoreNames{
		Pending:   c.config.PendingStore,
		Fulfilled: c.config.FulfilledStore,
	}
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(c.store, c.pending, c.storeNames())
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	return commands.NewFulfillOrderCommandHandler(c.store, c.pending, c.storeNames())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.pending)
}

func (c *CompositionRoot) CreateGetPendingOrderQueryHandler() queries.GetPendingOrderQueryHandler {
	return queries.NewGetPendingOrderQueryHandler(c.pending)
}

// CreateMenu builds the console front end on in and out.
func (c *CompositionRoot) CreateMenu(in io.Reader, out io.Writer) *console.Menu {
	prompt := console.NewPrompter(in, out)
	list := c.CreateGetPendingOrdersQueryHandler()

	entry := console.NewOrderEntry(
		prompt,
		c.CreateGetPendingOrderQueryHandler(),
		c.CreateAddOrderCommandHandler(),
		c.logger,
	)
	fulfillment := console.NewFulfillment(
		prompt,
		list,
		c.CreateFulfillOrderCommandHandler(),
		c.logger,
	)

	return console.NewMenu(prompt, entry, fulfillment, list, console.NewReport(out), c.logger)
}
