package origin

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTaggedRepo(t *testing.T) (*git.Repository, string, string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("left-pad"), 0o600))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	signature := &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()}
	hash, err := wt.Commit("release", &git.CommitOptions{Author: signature})
	require.NoError(t, err)

	// lightweight tag with v prefix
	_, err = repo.CreateTag("v1.3.0", hash, nil)
	require.NoError(t, err)
	// annotated tag without prefix
	_, err = repo.CreateTag("2.0.0", hash, &git.CreateTagOptions{Tagger: signature, Message: "2.0.0"})
	require.NoError(t, err)

	return repo, dir, hash.String()
}

func TestResolveVersion(t *testing.T) {
	repo, _, sha := initTaggedRepo(t)

	t.Run("falls back to the v prefixed tag", func(t *testing.T) {
		got, ok := resolveVersion(repo, "1.3.0")
		assert.True(t, ok)
		assert.Equal(t, sha, got)
	})

	t.Run("peels annotated tags", func(t *testing.T) {
		got, ok := resolveVersion(repo, "2.0.0")
		assert.True(t, ok)
		assert.Equal(t, sha, got)
	})

	t.Run("unknown version stays unresolved", func(t *testing.T) {
		_, ok := resolveVersion(repo, "9.9.9")
		assert.False(t, ok)
	})
}

func TestResolveCommitUnreachableRepository(t *testing.T) {
	resolver := NewGitCommitResolver(time.Second)
	_, ok := resolver.ResolveCommit(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), "1.0.0")
	assert.False(t, ok)

	_, ok = resolver.ResolveCommit(context.Background(), "", "1.0.0")
	assert.False(t, ok)
}

func TestResolveCommitFromClone(t *testing.T) {
	_, dir, sha := initTaggedRepo(t)
	resolver := NewGitCommitResolver(10 * time.Second)

	t.Run("resolves the v prefixed tag of the cloned repository", func(t *testing.T) {
		got, ok := resolver.ResolveCommit(context.Background(), dir, "1.3.0")
		assert.True(t, ok)
		assert.Equal(t, sha, got)
	})

	t.Run("resolves an annotated tag of the cloned repository", func(t *testing.T) {
		got, ok := resolver.ResolveCommit(context.Background(), dir, "2.0.0")
		assert.True(t, ok)
		assert.Equal(t, sha, got)
	})

	t.Run("leaves an untagged version unresolved", func(t *testing.T) {
		_, ok := resolver.ResolveCommit(context.Background(), dir, "9.9.9")
		assert.False(t, ok)
	})
}
