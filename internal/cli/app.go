package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/server"
	"github.com/uelms-project/uelms/internal/server/models"
)

// App is the interactive terminal front end. It holds the backend services
// and the account of the currently signed-in user, if any.
type App struct {
	backend *server.App
	account *models.Account
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(backend *server.App) *App {
	return &App{
		backend: backend,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "University records CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

func (a *App) isAdmin() bool {
	return a.account != nil && a.account.Role == models.RoleAdmin
}

func (a *App) status() string {
	if a.account == nil {
		return "guest"
	}
	return fmt.Sprintf("%s/%s", a.account.DisplayName(), a.account.Role)
}

// reportError prints a user-facing message for the well-known sentinel
// errors and a generic one for everything else. The wrapped detail is
// deliberately not shown; the backend logs it.
func (a *App) reportError(err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		fmt.Fprintln(a.out, err.Error())
	case errors.Is(err, common.ErrorDuplicate):
		fmt.Fprintln(a.out, "Already exists. Pick a different value.")
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "Not found.")
	case errors.Is(err, common.ErrorUnauthorized):
		fmt.Fprintln(a.out, "Invalid credentials.")
	case errors.Is(err, common.ErrorConnection), errors.Is(err, common.ErrorSchema):
		fmt.Fprintln(a.out, "Service unavailable, try again later.")
	default:
		fmt.Fprintln(a.out, "Something went wrong, try again later.")
	}
}
