package origin

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitCommitResolver maps a released version onto the commit its tag points to.
type GitCommitResolver struct {
	timeout time.Duration
}

func NewGitCommitResolver(timeout time.Duration) GitCommitResolver {
	return GitCommitResolver{timeout: timeout}
}

// ResolveCommit clones repoURL without a worktree into a temporary directory and
// looks up the tag <version>, then v<version>. Any failure leaves the commit unresolved.
func (g GitCommitResolver) ResolveCommit(ctx context.Context, repoURL, version string) (string, bool) {
	if repoURL == "" || version == "" {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "deppkg-origin-*")
	if err != nil {
		slog.Warn("could not create temporary directory", "err", err)
		return "", false
	}
	defer os.RemoveAll(dir)

	repo, err := git.PlainCloneContext(ctx, dir, true, &git.CloneOptions{
		URL:   repoURL,
		Depth: 1,
		Tags:  git.AllTags,
	})
	if err != nil {
		slog.Debug("could not clone repository", "url", repoURL, "err", err)
		return "", false
	}

	return resolveVersion(repo, version)
}

func resolveVersion(repo *git.Repository, version string) (string, bool) {
	for _, candidate := range []string{version, "v" + version} {
		if sha, ok := resolveTag(repo, candidate); ok {
			return sha, true
		}
	}
	return "", false
}

func resolveTag(repo *git.Repository, name string) (string, bool) {
	ref, err := repo.Tag(name)
	if err != nil {
		// not a tag, maybe a branch or an abbreviated hash
		hash, err := repo.ResolveRevision(plumbing.Revision(name))
		if err != nil {
			return "", false
		}
		return hash.String(), true
	}

	// annotated tags point to a tag object, peel it to the commit
	tag, err := repo.TagObject(ref.Hash())
	if err != nil {
		return ref.Hash().String(), true
	}
	if tag.TargetType != plumbing.CommitObject {
		return "", false
	}
	return tag.Target.String(), true
}
