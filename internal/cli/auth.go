package cli

import (
	"context"
	"fmt"
)

// Register prompts for the new account's details and creates it.
// Students and teachers enter a registration number as their username;
// the backend decides how to interpret it based on the role.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username (registration no for students)", a.out)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Enter role (ADMIN, TEACHER or STUDENT)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	acc, err := a.backend.Auth.Register(ctx, username, password, confirm, role)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Registered %s as %s. You can log in now.\n", acc.DisplayName(), acc.Role)
	return nil
}

// Login prompts for credentials and signs the user in. The role prompt may
// be left empty; the backend then accepts whichever role the account holds.
func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter username or registration no", a.out)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Enter role (optional, Enter to skip)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	acc, err := a.backend.Auth.Login(ctx, identifier, password, role)
	if err != nil {
		a.reportError(err)
		return err
	}

	a.account = acc
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", acc.DisplayName(), acc.Role)
	return nil
}

// Recover files a password recovery request for an identifier. The backend
// records the request for the records office; the password is not shown here.
func (a *App) Recover(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter username or registration no", a.out)
	if err != nil {
		return err
	}

	req, err := a.backend.Auth.RequestRecovery(ctx, identifier)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Recovery request %s filed. The records office (%s) will contact you.\n",
		req.ID, req.TargetEmail)
	return nil
}

// CheckUsername reports whether a username is still available.
func (a *App) CheckUsername(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username to check", a.out)
	if err != nil {
		return err
	}

	taken, err := a.backend.Auth.UsernameTaken(ctx, username)
	if err != nil {
		a.reportError(err)
		return err
	}

	if taken {
		fmt.Fprintf(a.out, "%q is taken.\n", username)
	} else {
		fmt.Fprintf(a.out, "%q is available.\n", username)
	}
	return nil
}

// Logout clears the current session.
func (a *App) Logout(ctx context.Context) error {
	if a.account == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "Goodbye, %s.\n", a.account.DisplayName())
	a.account = nil
	return nil
}
