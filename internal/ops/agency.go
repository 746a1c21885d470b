package ops

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (a *App) LoadLeads(ctx context.Context) ([]model.Lead, error) {
	c := a.Stores.Agency.Leads
	mark := c.Mark()
	list, err := a.Source.ListLeads(ctx)
	if err != nil {
		return nil, a.fail("load_leads", "Load Failed", err)
	}
	apply(a, c, mark, list)
	return c.Items(), nil
}

func (a *App) CreateLead(ctx context.Context, in model.NewLead) (model.Lead, error) {
	if err := required("name", in.Name, "email", in.Email); err != nil {
		return model.Lead{}, err
	}
	l, err := a.Source.CreateLead(ctx, in)
	if err != nil {
		return model.Lead{}, a.fail("create_lead", "Creation Failed", err)
	}
	a.Stores.Agency.Leads.Add(l)
	a.success("Lead Created", l.Name)
	return l, nil
}

func (a *App) LoadClients(ctx context.Context) ([]model.Client, error) {
	c := a.Stores.Agency.Clients
	mark := c.Mark()
	list, err := a.Source.ListClients(ctx)
	if err != nil {
		return nil, a.fail("load_clients", "Load Failed", err)
	}
	apply(a, c, mark, list)
	return c.Items(), nil
}

func (a *App) CreateClient(ctx context.Context, in model.NewClient) (model.Client, error) {
	if err := required("name", in.Name); err != nil {
		return model.Client{}, err
	}
	cl, err := a.Source.CreateClient(ctx, in)
	if err != nil {
		return model.Client{}, a.fail("create_client", "Creation Failed", err)
	}
	a.Stores.Agency.Clients.Add(cl)
	a.success("Client Created", cl.Name)
	return cl, nil
}

func (a *App) LoadProposals(ctx context.Context) ([]model.Proposal, error) {
	c := a.Stores.Agency.Proposals
	mark := c.Mark()
	list, err := a.Source.ListProposals(ctx)
	if err != nil {
		return nil, a.fail("load_proposals", "Load Failed", err)
	}
	apply(a, c, mark, list)
	return c.Items(), nil
}

func (a *App) CreateProposal(ctx context.Context, in model.NewProposal) (model.Proposal, error) {
	if err := required("title", in.Title); err != nil {
		return model.Proposal{}, err
	}
	p, err := a.Source.CreateProposal(ctx, in)
	if err != nil {
		return model.Proposal{}, a.fail("create_proposal", "Creation Failed", err)
	}
	a.Stores.Agency.Proposals.Add(p)
	a.success("Proposal Created", p.Title)
	return p, nil
}

// OpenProposal loads one proposal with its markdown into the editor slot.
func (a *App) OpenProposal(ctx context.Context, id string) (model.Proposal, error) {
	if err := required("proposal id", id); err != nil {
		return model.Proposal{}, err
	}
	p, err := a.Source.GetProposal(ctx, id)
	if err != nil {
		return model.Proposal{}, a.fail("open_proposal", "Load Failed", err)
	}
	a.Stores.Agency.SetCurrentProposal(&p)
	return p, nil
}

func (a *App) LoadCalendar(ctx context.Context) ([]model.CalendarItem, error) {
	c := a.Stores.Agency.Calendar
	mark := c.Mark()
	list, err := a.Source.ListCalendar(ctx)
	if err != nil {
		return nil, a.fail("load_calendar", "Load Failed", err)
	}
	apply(a, c, mark, list)
	return c.Items(), nil
}

func (a *App) CreateCalendarItem(ctx context.Context, in model.NewCalendarItem) (model.CalendarItem, error) {
	if err := required("title", in.Title, "date", in.Date); err != nil {
		return model.CalendarItem{}, err
	}
	item, err := a.Source.CreateCalendarItem(ctx, in)
	if err != nil {
		return model.CalendarItem{}, a.fail("create_calendar_item", "Creation Failed", err)
	}
	a.Stores.Agency.Calendar.Add(item)
	a.success("Item Created", item.Title)
	return item, nil
}

// LoadAgency loads the four agency collections concurrently. Each load
// reports its own failure; the first error is returned after all finish.
func (a *App) LoadAgency(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { _, err := a.LoadLeads(ctx); return err })
	g.Go(func() error { _, err := a.LoadClients(ctx); return err })
	g.Go(func() error { _, err := a.LoadProposals(ctx); return err })
	g.Go(func() error { _, err := a.LoadCalendar(ctx); return err })
	return g.Wait()
}
