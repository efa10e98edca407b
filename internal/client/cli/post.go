package cli

import (
	"context"
	"fmt"
	"strconv"

	"linkfeed/internal/client/session"
)

// Compose reads a multi-line post body and publishes it. Content is
// validated locally (non-empty, at most 1000 characters) before any
// request is sent.
func (a *App) Compose(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "What do you want to share?", a.out)
	if err != nil {
		return err
	}

	post, err := a.posts.Compose(ctx, content)
	if err != nil {
		fmt.Fprintf(a.out, "Could not publish: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Published post #%d.\n", post.ID)
	return nil
}

// Like toggles the caller's like on a post and prints the refreshed count.
func (a *App) Like(ctx context.Context, idArg string) error {
	id, err := a.resolvePostID(idArg, "Enter post id to like")
	if err != nil {
		fmt.Fprintf(a.out, "Invalid post id: %v\n", err)
		return err
	}

	res, err := a.posts.ToggleLike(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not toggle like: %v\n", err)
		return err
	}

	verb := "Unliked"
	if res.Liked {
		verb = "Liked"
	}
	fmt.Fprintf(a.out, "%s post #%d (%d likes).\n", verb, id, res.LikesCount)
	return nil
}

// Delete removes the caller's own post. The backend rejects deleting
// someone else's post and the message is surfaced inline.
func (a *App) Delete(ctx context.Context, idArg string) error {
	id, err := a.resolvePostID(idArg, "Enter post id to delete")
	if err != nil {
		fmt.Fprintf(a.out, "Invalid post id: %v\n", err)
		return err
	}

	if err := a.posts.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Deleted post #%d.\n", id)
	return nil
}

// Mine prints the authenticated user's own posts.
func (a *App) Mine(ctx context.Context) error {
	st := a.sessions.Current()
	if st.Status != session.StatusAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	posts, err := a.posts.UserPosts(ctx, st.User.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load your posts: %v\n", err)
		return err
	}
	printPosts(a.out, posts)
	return nil
}

// resolvePostID parses the id argument, prompting for one when it was not
// given on the command line.
func (a *App) resolvePostID(idArg, prompt string) (int64, error) {
	if idArg == "" {
		var err error
		idArg, err = getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
	}
	return strconv.ParseInt(idArg, 10, 64)
}
