package cli

import (
	"context"
	"fmt"
	"io"

	"linkfeed/internal/client/models"
)

// Feed prints all posts, newest first.
func (a *App) Feed(ctx context.Context) error {
	posts, err := a.posts.Feed(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load feed: %v\n", err)
		return err
	}
	printPosts(a.out, posts)
	return nil
}

// Search prints posts matching the query by content or author name.
func (a *App) Search(ctx context.Context, query string) error {
	posts, err := a.posts.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(a.out, "Search failed: %v\n", err)
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintf(a.out, "No results for %q.\n", query)
		return nil
	}
	fmt.Fprintf(a.out, "Results for %q:\n", query)
	printPosts(a.out, posts)
	return nil
}

func printPosts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")
		return
	}
	for _, p := range posts {
		printPost(w, p)
	}
}

func printPost(w io.Writer, p models.Post) {
	author := p.AuthorName
	if p.AuthorJobTitle != "" {
		author += " · " + p.AuthorJobTitle
	}
	liked := ""
	if p.LikedByUser {
		liked = " [liked]"
	}
	fmt.Fprintf(w, "#%d %s (%s)\n%s\n%d likes%s\n\n",
		p.ID, author, p.CreatedAt, p.Content, p.LikesCount, liked)
}

func printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "#%d %s <%s>\n", u.ID, u.Name, u.Email)
	if u.JobTitle != "" {
		fmt.Fprintf(w, "%s\n", u.JobTitle)
	}
	if u.Location != "" {
		fmt.Fprintf(w, "%s\n", u.Location)
	}
	if u.Bio != "" {
		fmt.Fprintf(w, "%s\n", u.Bio)
	}
	if u.PostsCount > 0 {
		fmt.Fprintf(w, "%d posts\n", u.PostsCount)
	}
}
