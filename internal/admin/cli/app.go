package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dhanya-017/infinart-admin/internal/admin/api"
	"github.com/dhanya-017/infinart-admin/internal/admin/config"
	"github.com/dhanya-017/infinart-admin/internal/admin/credential"
	"github.com/dhanya-017/infinart-admin/internal/admin/services"
	"github.com/dhanya-017/infinart-admin/internal/admin/session"
	"github.com/dhanya-017/infinart-admin/internal/admin/storage"
	"github.com/dhanya-017/infinart-admin/internal/logging"
)

// sessionGuard is the slice of the session guard the shell depends on.
// Satisfied by *session.Guard; tests can provide a stub.
type sessionGuard interface {
	State() session.State
	Verify(ctx context.Context) (session.State, error)
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	ForceLogout(ctx context.Context)
}

// App wires the console together: credential store, session guard,
// directory, and the moderation workspace. It owns no moderation state of
// its own; it renders whatever the services produce.
type App struct {
	config    *config.Config
	guard     sessionGuard
	client    api.Client
	directory *services.Directory
	prompter  services.Prompter

	// workspace is the currently open moderation view, nil until the
	// operator opens it. itemsView likewise for a seller's items.
	workspace *services.Workspace
	itemsView *services.SellerItemsView

	db     *sql.DB
	reader *bufio.Reader
	log    logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	creds := credential.NewSQLiteStore(db)
	client := api.NewHTTPClient(c.AuthorityAddr, creds, log)
	guard := session.NewGuard(creds, client, log)

	reader := bufio.NewReader(os.Stdin)
	app := &App{
		config:    c,
		guard:     guard,
		client:    client,
		directory: services.NewDirectory(client, guard, log),
		prompter:  &terminalPrompter{reader: reader, w: os.Stdout},
		db:        db,
		reader:    reader,
		log:       log,
	}
	return app, nil
}

// Run verifies the stored credential once, then hands control to the REPL.
// The verification result gates every protected command; it is never
// re-checked during the session except through login/logout.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if _, err := a.guard.Verify(ctx); err != nil {
		a.log.Error(ctx, "session verification error", "error", err)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	if a.workspace != nil {
		a.workspace.Close()
	}
	_ = a.db.Close()
}

func (a *App) isAuthorized() bool {
	return a.guard.State() == session.StateAuthorized
}

func (a *App) status() string {
	return string(a.guard.State())
}
