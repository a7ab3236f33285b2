package app

import (
	"context"

	"github.com/Klea008/bookctl/internal/tui"
	"github.com/Klea008/bookctl/internal/view"
)

// Browser configurations for the four list destinations. These are the
// original routes rendered by one parametrized browser.

func browseOptions() tui.BrowserOptions {
	return tui.BrowserOptions{
		Title: "Explore",
		View:  view.Options{Sorting: true},
	}
}

func listsOptions() tui.BrowserOptions {
	return tui.BrowserOptions{
		Title: "Genres",
		View:  view.Options{},
	}
}

func manageOptions() tui.BrowserOptions {
	return tui.BrowserOptions{
		Title:   "Manage Books",
		View:    view.Options{Sorting: true},
		CanEdit: true,
	}
}

func pagedOptions() tui.BrowserOptions {
	return tui.BrowserOptions{
		Title:   "Paged Management",
		View:    view.Options{Pagination: true, Sorting: true, PageSize: cfg.Defaults.PageSize},
		CanEdit: true,
	}
}

// runHub drives the interactive menu loop: resolve the session once,
// then route destinations until the user quits. Logging in redirects to
// the role's landing view, like the original route gating.
func runHub() error {
	ctx := context.Background()
	store.CheckAuth(ctx)

	for {
		action, err := tui.RunHub(tui.HubContext{
			User:   store.User(),
			Notice: store.TakeNotice(),
		})
		if err != nil {
			return err
		}

		switch action {
		case "quit":
			return nil

		case "browse":
			err = tui.RunBrowser(client, cfg, browseOptions())

		case "lists":
			err = tui.RunBrowser(client, cfg, listsOptions())

		case "manage":
			if !store.Authenticated() {
				warn("Log in to manage books.")
				continue
			}
			err = tui.RunBrowser(client, cfg, manageOptions())

		case "paged":
			if !store.IsAdmin() {
				warn("Paged management requires an admin account.")
				continue
			}
			err = tui.RunBrowser(client, cfg, pagedOptions())

		case "login":
			err = hubLogin(ctx, false)

		case "signup":
			err = hubLogin(ctx, true)

		case "logout":
			if lerr := store.Logout(ctx); lerr != nil {
				// Session is forced anonymous regardless.
				warn("Logout call failed: %v", lerr)
			}
		}

		if err != nil {
			warn("%v", err)
		}
	}
}

// hubLogin collects credentials, authenticates, and lands the user on
// the view for their role.
func hubLogin(ctx context.Context, signup bool) error {
	creds, err := tui.RunLoginForm(signup)
	if err != nil || creds == nil {
		return err
	}

	if signup {
		err = store.Signup(ctx, creds.FullName, creds.Email, creds.Password)
	} else {
		err = store.Login(ctx, creds.Email, creds.Password)
	}
	if err != nil {
		return err
	}

	switch store.Landing() {
	case "paged":
		return tui.RunBrowser(client, cfg, pagedOptions())
	case "browse":
		return tui.RunBrowser(client, cfg, browseOptions())
	}
	return nil
}
