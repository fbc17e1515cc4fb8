package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/client/config"
	"github.com/dmitrijs2005/gophaccounts/internal/client/session"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/store"
	"github.com/dmitrijs2005/gophaccounts/internal/filex"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

// sessionService is what the commands need from session.Manager.
type sessionService interface {
	Init(ctx context.Context)
	Login(ctx context.Context, returnURL string) error
	Logout(ctx context.Context)
	Account() *models.Account
	GetAll(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, id int) (*models.Account, error)
	Update(ctx context.Context, id int, params models.AccountParams) (*models.Account, error)
	Delete(ctx context.Context, id int) error
	Close()
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	session sessionService
	reader  *bufio.Reader
	out     io.Writer

	mu        sync.Mutex
	route     string
	returnURL string

	closers []func() error
}

// NewApp wires the client. With the sqlite backend the account slot shares
// the local database that also holds the provider token cache.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, c.Debug)
	a := &App{
		config: c,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		route:  session.RouteLogin,
	}

	dbPath, err := filex.PrepareFile(c.LocalDB)
	if err != nil {
		return nil, err
	}
	db, err := dbx.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	s, err := openSlot(ctx, c.Storage, db)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.closers = append(a.closers, s.Close)

	st, err := store.Open(ctx, s)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	profiles := identity.NewProfileClient(c.GraphURL, nil)
	router := fakebackend.New(st, profiles, logger)
	transport := fakebackend.NewInterceptor(router, http.DefaultTransport, c.APIDelay, logger)
	api := client.NewHTTPClient(c.APIBaseURL, &http.Client{Transport: transport})

	provider := identity.NewGraphProvider(c.GraphURL, nil,
		identity.NewTerminalTokenSource(a.reader, a.out),
		identity.NewMetadataTokenCache(db))

	a.session = session.NewManager(api, provider, session.NavigatorFunc(a.navigate), logger)
	return a, nil
}

func openSlot(ctx context.Context, opts slot.Options, local *sql.DB) (slot.Slot, error) {
	if opts.Backend == slot.BackendSQLite || opts.Backend == "" {
		opts.SQLiteDB = local
	}
	return slot.Open(ctx, opts)
}

func (a *App) navigate(route string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.route = route
}

func (a *App) currentRoute() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.session.Account() != nil
}

func (a *App) status() string {
	s := a.currentRoute()
	if acc := a.session.Account(); acc != nil {
		s = acc.Name + " " + s
	}
	return s
}

// Run auto-authenticates from a cached provider session and then runs the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)
	if a.isLoggedIn() {
		a.navigate(session.RouteHome)
	}

	fmt.Fprintln(a.out, "Welcome to gophaccounts CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Close stops the session and releases storage in reverse order.
func (a *App) Close() error {
	if a.session != nil {
		a.session.Close()
	}
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
