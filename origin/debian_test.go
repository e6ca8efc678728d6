package origin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteDebianVcs(t *testing.T) {
	cases := map[string]string{
		"git://git.debian.org/git/pkg-perl/packages/libfoo.git": "https://salsa.debian.org/perl-team/packages/libfoo",
		"git://anonscm.debian.org/users/someone/bar.git":        "https://salsa.debian.org/someone/bar",
		"git://anonscm.debian.org/collab-maint/baz.git":         "https://salsa.debian.org/collab-maint/baz",
		"https://salsa.debian.org/debian/zlib.git -b debian/sid": "https://salsa.debian.org/debian/zlib.git",
		"": "",
	}

	for in, expected := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, rewriteDebianVcs(in))
		})
	}
}

func TestParseVcsGit(t *testing.T) {
	t.Run("plain control file", func(t *testing.T) {
		dsc := "Format: 3.0 (quilt)\nSource: zlib\nVersion: 1:1.2.13.dfsg-1\nVcs-Git: https://salsa.debian.org/debian/zlib.git\n"
		assert.Equal(t, "https://salsa.debian.org/debian/zlib.git", parseVcsGit([]byte(dsc)))
	})

	t.Run("missing field", func(t *testing.T) {
		dsc := "Format: 3.0 (quilt)\nSource: zlib\n"
		assert.Empty(t, parseVcsGit([]byte(dsc)))
	})
}

func TestStripEpoch(t *testing.T) {
	assert.Equal(t, "1.2.13.dfsg-1", stripEpoch("1:1.2.13.dfsg-1"))
	assert.Equal(t, "2.0", stripEpoch("2.0"))
	assert.Equal(t, "3.1-2ubuntu1", stripEpoch("3.1-2ubuntu1"))
}
