package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"picshelf/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and creates a new
// local account.
//
// A duplicate email is reported to the user and not retried. On success the
// user is asked to log in, matching the original flow where registration
// never issues a session by itself.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.creds.Register(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			printlnFn("User already exists")
			return nil
		}
		a.logger.Error(ctx, "registration failed", "error", err)
		return err
	}

	printlnFn("Registered successfully! Please login.")
	return nil
}

// Login prompts for credentials and tries to authenticate against the local
// credential store. On success it installs the session context and starts
// the idle/expiry watcher; on a credential mismatch it reports "Invalid
// credentials" and leaves the state unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid credentials")
			return nil
		}
		a.logger.Error(ctx, "login failed", "error", err)
		return err
	}

	a.startSession(ctx, email)
	printlnFn(fmt.Sprintf("Welcome, %s", email))
	return nil
}

// Logout tears down the watcher, evicts the persisted token, clears the
// in-memory session context, and unmounts the gallery view.
func (a *App) Logout(ctx context.Context) error {
	a.endSession()
	a.view.Reset()

	if err := a.session.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}

	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the email of the current session, re-verifying the token
// rather than trusting the in-memory state.
func (a *App) WhoAmI(ctx context.Context) error {
	email, err := a.session.CurrentUser(ctx)
	if err != nil {
		a.endSession()
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(email)
	return nil
}
