package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/service"
	"github.com/spf13/pflag"
)

// runCommand runs one of the administrative subcommands instead of the server.
func runCommand(ctx context.Context, svc service.Service, name string, args []string) error {
	switch name {
	case "useradd":
		return userAdd(ctx, svc, args)
	case "edit":
		return edit(ctx, svc, args)
	case "hide":
		return hide(ctx, svc, args)
	default:
		return fmt.Errorf("unknown command %q; expected useradd, edit or hide", name)
	}
}

func userAdd(ctx context.Context, svc service.Service, args []string) error {
	fs := pflag.NewFlagSet("useradd", pflag.ContinueOnError)
	username := fs.StringP("username", "u", "", "name of the new user")
	email := fs.StringP("email", "e", "", "email address of the new user")
	password := fs.StringP("password", "p", "", "password of the new user")
	admin := fs.Bool("admin", false, "allow the user to delete pages and see deleted revisions")
	suppressor := fs.Bool("suppressor", false, "allow the user to see suppressed revisions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := svc.CreateUser(ctx, *username, *password, *email, *admin, *suppressor)
	if err != nil {
		return err
	}
	log.Info().Int64("id", id).Str("username", *username).Msg("user created")
	return nil
}

// edit saves a revision read from a file, or from standard input when no file is given.
func edit(ctx context.Context, svc service.Service, args []string) error {
	fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
	title := fs.StringP("title", "t", "", "title of the page")
	file := fs.StringP("file", "f", "", "file holding the new content")
	summary := fs.StringP("summary", "s", "", "edit summary")
	user := fs.Int64("user", 0, "id of the editing user; 0 records an anonymous edit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	content, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	rev, err := svc.Edit(ctx, *title, string(content), *summary, *user)
	if err != nil {
		return err
	}
	log.Info().Str("title", *title).Int64("revision", rev.ID).Msg("page saved")
	return nil
}

func hide(ctx context.Context, svc service.Service, args []string) error {
	fs := pflag.NewFlagSet("hide", pflag.ContinueOnError)
	rev := fs.Int64P("revision", "r", 0, "id of the revision")
	fields := fs.StringSlice("fields", []string{"text"}, "fields to hide: text, comment, user, restricted; none to unhide")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flags, err := ParseDeletionFlags(*fields)
	if err != nil {
		return err
	}
	if err = svc.HideRevision(ctx, *rev, flags); err != nil {
		return err
	}
	log.Info().Int64("revision", *rev).Uint8("flags", uint8(flags)).Msg("revision visibility changed")
	return nil
}

func ParseDeletionFlags(fields []string) (domain.DeletionFlags, error) {
	var flags domain.DeletionFlags
	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "text":
			flags |= domain.DeletedText
		case "comment":
			flags |= domain.DeletedComment
		case "user":
			flags |= domain.DeletedUser
		case "restricted":
			flags |= domain.DeletedRestricted
		case "none", "":
		default:
			return 0, fmt.Errorf("unknown field %q", f)
		}
	}
	return flags, nil
}
