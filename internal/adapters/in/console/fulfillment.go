package console

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"

	"github.com/labstack/gommon/log"
)

// Fulfillment is the dialog that serves one pending order.
type Fulfillment struct {
	prompt  *Prompter
	list    queries.GetPendingOrdersQueryHandler
	fulfill commands.FulfillOrderCommandHandler
	logger  *log.Logger
}

// NewFulfillment wires the dialog to its handlers.
func NewFulfillment(
	prompt *Prompter,
	list queries.GetPendingOrdersQueryHandler,
	fulfill commands.FulfillOrderCommandHandler,
	logger *log.Logger,
) *Fulfillment {
	return &Fulfillment{
		prompt:  prompt,
		list:    list,
		fulfill: fulfill,
		logger:  logger,
	}
}

// Run numbers the pending orders, asks which one to serve and moves it to the
// fulfilled store. The served order is returned for printing; it is nil when
// nothing was fulfilled.
func (f *Fulfillment) Run(ctx context.Context) (string, *queries.OrderView, error) {
	views, err := f.list.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return "", nil, err
	}
	if len(views) == 0 {
		return services.ErrNoPendingOrders.Error(), nil, nil
	}

	f.prompt.Say("======== Pending Orders ========")
	for i, view := range views {
		f.prompt.Say("%d. Order ID: %s - Customer: %s", i+1, view.ID, view.Customer)
	}
	f.prompt.Say("================================")

	position, ok, err := f.selectPosition(len(views))
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "fulfillment cancelled", nil, nil
	}

	cmd, err := commands.NewFulfillOrderCommand(position)
	if err != nil {
		return "", nil, err
	}

	served, err := f.fulfill.Handle(ctx, cmd)
	if errors.Is(err, services.ErrNoPendingOrders) {
		return err.Error(), nil, nil
	}
	if err != nil {
		f.logger.Errorf("fulfill order at position %d: %v", position, err)
		return "", nil, err
	}

	f.logger.Infof("order %s fulfilled, total %d", served.ID(), served.Total())
	view := queries.NewOrderView(served)
	return fmt.Sprintf("order %s fulfilled", view.ID), &view, nil
}

// selectPosition returns false when the operator cancels with a blank answer.
func (f *Fulfillment) selectPosition(count int) (int, bool, error) {
	for {
		raw, err := f.prompt.Ask("Select order number to fulfill (blank to cancel)")
		if err != nil {
			return 0, false, err
		}
		if raw == "" {
			return 0, false, nil
		}

		if n, ok := parseInt(raw); ok && n >= 1 && n <= count {
			return n, true, nil
		}
		f.prompt.Say("please enter a number between 1 and %d", count)
	}
}
