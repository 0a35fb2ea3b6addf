package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errBadBookmarkID  = errors.New("bookmark id must be a positive integer")
)

const usage = `usage: go-bookmarks-client [flags] <command> [args]

commands:
  signup   -email E -password P
  signin   -email E -password P
  me
  edit-me  [-email E] [-first-name F] [-last-name L]
  bookmarks
  bookmark <id>
  add      -title T -link L [-description D]
  edit     <id> [-title T] [-link L] [-description D]
  delete   <id>
  version
`

type command func(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error

var commands = map[string]command{
	"signup":    signUp,
	"signin":    signIn,
	"me":        me,
	"edit-me":   editMe,
	"bookmarks": listBookmarks,
	"bookmark":  getBookmark,
	"add":       addBookmark,
	"edit":      editBookmark,
	"delete":    deleteBookmark,
	"version":   version,
}

// run dispatches args[0] to its command. Results are written to out as JSON,
// tokens and versions as plain lines.
func run(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}

	return cmd(ctx, api, args[1:], out)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// optional returns a pointer to the flag value only if the flag was passed,
// so that unset flags stay absent from PATCH bodies.
func optional(fs *flag.FlagSet, name string, value *string) *string {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return value
}

func parseBookmarkID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, errBadBookmarkID
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("%w: %q", errBadBookmarkID, args[0])
	}

	return id, args[1:], nil
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseCredentials(name string, args []string) (models.AuthRequest, error) {
	var req models.AuthRequest

	fs := newFlagSet(name)
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return req, fmt.Errorf("%s: %w", name, err)
	}

	return req, nil
}

func signUp(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	req, err := parseCredentials("signup", args)
	if err != nil {
		return err
	}

	token, err := api.SignUp(ctx, req)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func signIn(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	req, err := parseCredentials("signin", args)
	if err != nil {
		return err
	}

	token, err := api.SignIn(ctx, req)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func me(ctx context.Context, api adapter.BookmarksAPI, _ []string, out io.Writer) error {
	user, err := api.Me(ctx)
	if err != nil {
		return err
	}

	return printJSON(out, user)
}

func editMe(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	var email, firstName, lastName string

	fs := newFlagSet("edit-me")
	fs.StringVar(&email, "email", "", "new email")
	fs.StringVar(&firstName, "first-name", "", "new first name")
	fs.StringVar(&lastName, "last-name", "", "new last name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("edit-me: %w", err)
	}

	user, err := api.EditMe(ctx, models.EditUserRequest{
		Email:     optional(fs, "email", &email),
		FirstName: optional(fs, "first-name", &firstName),
		LastName:  optional(fs, "last-name", &lastName),
	})
	if err != nil {
		return err
	}

	return printJSON(out, user)
}

func listBookmarks(ctx context.Context, api adapter.BookmarksAPI, _ []string, out io.Writer) error {
	bookmarks, err := api.ListBookmarks(ctx)
	if err != nil {
		return err
	}

	return printJSON(out, bookmarks)
}

func getBookmark(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	id, _, err := parseBookmarkID(args)
	if err != nil {
		return err
	}

	bookmark, err := api.GetBookmark(ctx, id)
	if err != nil {
		return err
	}

	return printJSON(out, bookmark)
}

func addBookmark(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	var req models.CreateBookmarkRequest
	var description string

	fs := newFlagSet("add")
	fs.StringVar(&req.Title, "title", "", "bookmark title")
	fs.StringVar(&req.Link, "link", "", "bookmark URL")
	fs.StringVar(&description, "description", "", "bookmark description")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	req.Description = optional(fs, "description", &description)

	bookmark, err := api.CreateBookmark(ctx, req)
	if err != nil {
		return err
	}

	return printJSON(out, bookmark)
}

func editBookmark(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	id, rest, err := parseBookmarkID(args)
	if err != nil {
		return err
	}

	var title, link, description string

	fs := newFlagSet("edit")
	fs.StringVar(&title, "title", "", "new title")
	fs.StringVar(&link, "link", "", "new URL")
	fs.StringVar(&description, "description", "", "new description")
	if err = fs.Parse(rest); err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	bookmark, err := api.EditBookmark(ctx, id, models.EditBookmarkRequest{
		Title:       optional(fs, "title", &title),
		Link:        optional(fs, "link", &link),
		Description: optional(fs, "description", &description),
	})
	if err != nil {
		return err
	}

	return printJSON(out, bookmark)
}

func deleteBookmark(ctx context.Context, api adapter.BookmarksAPI, args []string, out io.Writer) error {
	id, _, err := parseBookmarkID(args)
	if err != nil {
		return err
	}

	if err = api.DeleteBookmark(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "bookmark %d deleted\n", id)
	return err
}

func version(ctx context.Context, api adapter.BookmarksAPI, _ []string, out io.Writer) error {
	v, err := api.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, v)
	return err
}
