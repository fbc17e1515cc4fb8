package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/token"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

// Routes the manager navigates to.
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

// RefreshLead is how long before token expiry the refresh fires.
const RefreshLead = 60 * time.Second

// Navigator moves the UI to a route.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

type stopper interface {
	Stop() bool
}

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

type Manager struct {
	api      client.Client
	provider identity.Provider
	nav      Navigator
	log      logging.Logger

	now       func() time.Time
	afterFunc func(time.Duration, func()) stopper

	// ctx bounds background refreshes; cancelled by Close
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	current  *models.Account
	timer    stopper
	timerGen uint64
	subs     map[int]chan *models.Account
	nextSub  int
}

func NewManager(api client.Client, provider identity.Provider, nav Navigator, log logging.Logger) *Manager {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		api:       api,
		provider:  provider,
		nav:       nav,
		log:       log,
		now:       time.Now,
		afterFunc: realAfterFunc,
		ctx:       ctx,
		cancel:    cancel,
		subs:      make(map[int]chan *models.Account),
	}
}

// Account returns a copy of the current account, or nil.
func (m *Manager) Account() *models.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.current)
}

// Subscribe returns a channel that receives the current account right away
// and then every change. Slow readers only see the latest value. The
// returned func unsubscribes and closes the channel.
func (m *Manager) Subscribe() (<-chan *models.Account, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan *models.Account, 1)
	ch <- clone(m.current)
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
}

// publishLocked sets the current account. m.mu must be held.
func (m *Manager) publishLocked(a *models.Account) {
	m.current = a
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		ch <- clone(a)
	}
}

// Login runs the provider login and exchanges its token for an API
// session. An abandoned provider login returns nil without navigating.
func (m *Manager) Login(ctx context.Context, returnURL string) error {
	r, err := m.provider.Login(ctx)
	if err != nil {
		return err
	}
	if r == nil || r.AccessToken == "" {
		m.log.Info(ctx, "provider login abandoned")
		return nil
	}

	if _, err := m.APIAuthenticate(ctx, r.AccessToken); err != nil {
		return err
	}

	if returnURL == "" {
		returnURL = RouteHome
	}
	m.nav.Navigate(returnURL)
	return nil
}

// APIAuthenticate exchanges a provider access token for an API session,
// publishes the account and restarts the refresh timer.
func (m *Manager) APIAuthenticate(ctx context.Context, accessToken string) (*models.Account, error) {
	return m.authenticate(ctx, accessToken, 0)
}

// authenticate commits the result only while gen is still the live timer
// generation. gen 0 always commits.
func (m *Manager) authenticate(ctx context.Context, accessToken string, gen uint64) (*models.Account, error) {
	acc, err := m.api.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != 0 && gen != m.timerGen {
		return clone(acc), nil
	}

	m.api.SetToken(acc.Token)
	m.publishLocked(clone(acc))
	m.startTimerLocked(ctx, acc.Token)

	m.log.Info(ctx, "authenticated", "account_id", acc.ID)
	return clone(acc), nil
}

func (m *Manager) startTimerLocked(ctx context.Context, tok string) {
	m.stopTimerLocked()

	exp, err := token.Expiry(tok)
	if err != nil {
		m.log.Warn(ctx, "session token has no usable expiry, refresh disabled", "error", err)
		return
	}

	delay := exp.Sub(m.now()) - RefreshLead
	if delay < 0 {
		delay = 0
	}

	gen := m.timerGen
	m.timer = m.afterFunc(delay, func() { m.refresh(gen) })
	m.log.Debug(ctx, "refresh scheduled", "in", delay.String())
}

// stopTimerLocked cancels the pending refresh and invalidates any callback
// already in flight.
func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.timerGen++
}

func (m *Manager) refresh(gen uint64) {
	ctx := m.ctx
	if ctx.Err() != nil {
		return
	}

	r := m.provider.AuthResponse()
	if r == nil || r.AccessToken == "" {
		m.log.Warn(ctx, "refresh skipped, provider has no session")
		return
	}

	if _, err := m.authenticate(ctx, r.AccessToken, gen); err != nil {
		m.log.Error(ctx, "session refresh failed", "error", err)
	}
}

// Logout revokes the provider permissions, logs out of the provider and
// clears the local session. Provider failures are logged only.
func (m *Manager) Logout(ctx context.Context) {
	if _, err := m.provider.API(ctx, "/me/permissions", http.MethodDelete, nil); err != nil {
		m.log.Warn(ctx, "revoke permissions failed", "error", err)
	}
	if err := m.provider.Logout(ctx); err != nil {
		m.log.Warn(ctx, "provider logout failed", "error", err)
	}

	m.mu.Lock()
	m.stopTimerLocked()
	m.publishLocked(nil)
	m.api.SetToken("")
	m.mu.Unlock()

	m.nav.Navigate(RouteLogin)
}

func (m *Manager) GetAll(ctx context.Context) ([]models.Account, error) {
	return m.api.GetAll(ctx)
}

func (m *Manager) GetByID(ctx context.Context, id int) (*models.Account, error) {
	return m.api.GetByID(ctx, id)
}

// Update saves params on account id. Updating the logged-in account also
// refreshes the published session, keeping its token.
func (m *Manager) Update(ctx context.Context, id int, params models.AccountParams) (*models.Account, error) {
	acc, err := m.api.Update(ctx, id, params)
	if err != nil || acc == nil {
		return acc, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.ID == acc.ID {
		merged := acc.WithToken(m.current.Token)
		m.publishLocked(&merged)
	}
	return acc, nil
}

// Delete removes account id. Deleting the logged-in account logs out,
// whether or not the delete itself succeeded.
func (m *Manager) Delete(ctx context.Context, id int) error {
	err := m.api.Delete(ctx, id)

	m.mu.Lock()
	self := m.current != nil && m.current.ID == id
	m.mu.Unlock()

	if self {
		m.Logout(ctx)
	}
	return err
}

// Init authenticates once against the API when the provider already has a
// session. Failures are logged and leave the client logged out.
func (m *Manager) Init(ctx context.Context) {
	r, err := m.provider.LoginStatus(ctx)
	if err != nil {
		m.log.Warn(ctx, "provider login status failed", "error", err)
		return
	}
	if r == nil || r.AccessToken == "" {
		return
	}
	if _, err := m.APIAuthenticate(ctx, r.AccessToken); err != nil {
		m.log.Warn(ctx, "auto authenticate failed", "error", err)
	}
}

// Close stops the refresh timer and cancels any refresh in flight.
func (m *Manager) Close() {
	m.cancel()
	m.mu.Lock()
	m.stopTimerLocked()
	m.mu.Unlock()
}

func clone(a *models.Account) *models.Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
