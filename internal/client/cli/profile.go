package cli

import (
	"context"
	"fmt"
	"strconv"

	"linkfeed/internal/client/models"
)

// ShowUser prints another user's profile and their posts.
func (a *App) ShowUser(ctx context.Context, idArg string) error {
	if idArg == "" {
		var err error
		idArg, err = getSimpleText(a.reader, "Enter user id", a.out)
		if err != nil {
			return err
		}
	}
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid user id: %v\n", err)
		return err
	}

	user, err := a.users.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load user: %v\n", err)
		return err
	}
	printUser(a.out, user)

	posts, err := a.posts.UserPosts(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load posts: %v\n", err)
		return err
	}
	printPosts(a.out, posts)
	return nil
}

// EditProfile prompts for the editable profile fields; blank input keeps
// the current value. On confirmation the updated identity replaces the one
// held by the session.
func (a *App) EditProfile(ctx context.Context) error {
	upd := models.ProfileUpdate{}

	fields := []struct {
		prompt string
		dst    **string
	}{
		{"New name (blank to keep)", &upd.Name},
		{"New bio (blank to keep)", &upd.Bio},
		{"New job title (blank to keep)", &upd.JobTitle},
		{"New location (blank to keep)", &upd.Location},
		{"New avatar URL (blank to keep)", &upd.Avatar},
	}
	for _, f := range fields {
		value, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if value != "" {
			v := value
			*f.dst = &v
		}
	}

	user, err := a.users.UpdateProfile(ctx, upd)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update profile: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	printUser(a.out, user)
	return nil
}
