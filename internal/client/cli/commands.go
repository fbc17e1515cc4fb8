package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophaccounts/internal/client/session"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

// getTextWithDefault is an indirection used to facilitate testing.
var getTextWithDefault = GetTextWithDefault

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

// requireLogin remembers target as the post-login route when there is no
// session.
func (a *App) requireLogin(target string) error {
	if a.isLoggedIn() {
		return nil
	}
	a.mu.Lock()
	a.returnURL = target
	a.route = session.RouteLogin
	a.mu.Unlock()
	return errNotLoggedIn
}

func notFound(id int) error {
	return fmt.Errorf("account %d: %w", id, common.ErrorNotFound)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be a number", common.ErrorValidation)
	}
	return id, nil
}

// Login runs the provider login. Already logged in users are sent home.
func (a *App) Login(ctx context.Context) error {
	if acc := a.session.Account(); acc != nil {
		fmt.Fprintf(a.out, "Already logged in as %s\n", acc.Name)
		a.navigate(session.RouteHome)
		return nil
	}

	a.mu.Lock()
	returnURL := a.returnURL
	a.returnURL = ""
	a.mu.Unlock()

	if err := a.session.Login(ctx, returnURL); err != nil {
		return err
	}
	if acc := a.session.Account(); acc != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", acc.Name)
	} else {
		fmt.Fprintln(a.out, "Login cancelled")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	acc := a.session.Account()
	if acc == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %d, %s)\n", acc.Name, acc.ID, acc.ExternalID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(session.RouteHome); err != nil {
		return err
	}

	accounts, err := a.session.GetAll(ctx)
	if err != nil {
		return err
	}
	a.navigate(session.RouteHome)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEXTERNAL ID\tEXTRA INFO")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.ExternalID, acc.ExtraInfo)
	}
	return tw.Flush()
}

func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := a.requireLogin(session.RouteHome); err != nil {
		return err
	}

	acc, err := a.session.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if acc == nil {
		return notFound(id)
	}
	printAccount(a, acc)
	return nil
}

func printAccount(a *App, acc *models.Account) {
	fmt.Fprintf(a.out, "ID:          %d\n", acc.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", acc.Name)
	fmt.Fprintf(a.out, "External ID: %s\n", acc.ExternalID)
	fmt.Fprintf(a.out, "Extra info:  %s\n", acc.ExtraInfo)
}

// Edit prompts for name and extra info, prefilled with the stored values,
// and saves them. Name may not end up empty.
func (a *App) Edit(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	route := "/edit/" + rawID
	if err := a.requireLogin(route); err != nil {
		return err
	}

	acc, err := a.session.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if acc == nil {
		return notFound(id)
	}
	a.navigate(route)

	name, err := getTextWithDefault(a.reader, "Name", acc.Name, a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	extra, err := getTextWithDefault(a.reader, "Extra info", acc.ExtraInfo, a.out)
	if err != nil {
		return err
	}

	updated, err := a.session.Update(ctx, id, models.AccountParams{Name: &name, ExtraInfo: &extra})
	if err != nil {
		return err
	}
	if updated == nil {
		return notFound(id)
	}

	fmt.Fprintln(a.out, "Saved")
	a.navigate(session.RouteHome)
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := a.requireLogin(session.RouteHome); err != nil {
		return err
	}

	if err := a.session.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted account %d\n", id)
	return nil
}
