package console

import (
	"context"
	"errors"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
)

const (
	pendingReportTitle   = "Pending Orders"
	fulfilledReportTitle = "Fulfilled Order"
)

// Menu is the main loop of the order manager.
type Menu struct {
	prompt      *Prompter
	entry       *OrderEntry
	fulfillment *Fulfillment
	list        queries.GetPendingOrdersQueryHandler
	report      *Report
	logger      *log.Logger
}

// NewMenu creates the main loop.
func NewMenu(
	prompt *Prompter,
	entry *OrderEntry,
	fulfillment *Fulfillment,
	list queries.GetPendingOrdersQueryHandler,
	report *Report,
	logger *log.Logger,
) *Menu {
	return &Menu{
		prompt:      prompt,
		entry:       entry,
		fulfillment: fulfillment,
		list:        list,
		report:      report,
		logger:      logger,
	}
}

// Run shows the menu until the operator exits or the input closes.
// Failed operations are reported and the loop continues; only a context
// error or a broken input stream ends Run with an error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showOptions()

		choice, err := m.prompt.Ask("Choose an option (blank to exit)")
		if errors.Is(err, ErrInputClosed) {
			m.prompt.Say("goodbye")
			return nil
		}
		if err != nil {
			return err
		}

		var done bool
		switch choice {
		case "", "4":
			m.prompt.Say("goodbye")
			return nil
		case "1":
			done, err = m.addOrder(ctx)
		case "2":
			err = m.pendingReport(ctx)
		case "3":
			done, err = m.fulfillOrder(ctx)
		default:
			m.prompt.Say("please choose an option 1-4")
		}

		if done {
			m.prompt.Say("goodbye")
			return nil
		}
		if err != nil {
			m.prompt.Say("error: %v", err)
		}
	}
}

func (m *Menu) showOptions() {
	m.prompt.Say("*************** Menu ***************")
	m.prompt.Say("1. Add order")
	m.prompt.Say("2. Pending orders report")
	m.prompt.Say("3. Fulfill order")
	m.prompt.Say("4. Exit")
	m.prompt.Say("************************************")
}

func (m *Menu) addOrder(ctx context.Context) (bool, error) {
	msg, err := m.entry.Run(ctx)
	if errors.Is(err, ErrInputClosed) {
		m.logger.Warnf("input closed during order entry, order discarded")
		return true, nil
	}
	if err != nil {
		return false, err
	}

	m.prompt.Say(msg)
	return false, nil
}

func (m *Menu) pendingReport(ctx context.Context) error {
	views, err := m.list.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return err
	}

	m.report.PrintOrders(pendingReportTitle, views)
	return nil
}

func (m *Menu) fulfillOrder(ctx context.Context) (bool, error) {
	msg, served, err := m.fulfillment.Run(ctx)
	if errors.Is(err, ErrInputClosed) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	m.prompt.Say(msg)
	if served != nil {
		m.prompt.Say("fulfilled order details:")
		m.report.PrintOrder(fulfilledReportTitle, *served)
	}
	return false, nil
}
