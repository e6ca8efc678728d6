// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"1.3.0", "1_3_0"},
		{"left-pad", "left_pad"},
		{"org/widget", "org.widget"},
		{"1.0+build:7~rc", "1_0_build_7_rc"},
		{"lib(test)", "libtest"},
		{"c#", "c_"},
		{"@scope", "scope"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.out, CleanName(c.in), c.in)
	}

	t.Run("a slash does not survive a second pass", func(t *testing.T) {
		once := CleanName("a/b")
		assert.Equal(t, "a.b", once)
		assert.Equal(t, "a_b", CleanName(once))
	})

	t.Run("applying it twice yields the same result without slashes", func(t *testing.T) {
		for _, in := range []string{"1.3.0-rc.1+meta", "left-pad", "a:b~c(d)#e@f", "already_clean"} {
			once := CleanName(in)
			assert.Equal(t, once, CleanName(once), in)
		}
	})
}

func TestNormalizeQualifiers(t *testing.T) {
	t.Run("promotes a lonely version into the variant", func(t *testing.T) {
		variant, version := NormalizeQualifiers("", "2.0.0")
		assert.Equal(t, "2_0_0", variant)
		assert.Equal(t, "", version)
	})

	t.Run("promotion is stable when applied again", func(t *testing.T) {
		variant, version := NormalizeQualifiers("", "2.0.0")
		variant2, version2 := NormalizeQualifiers(variant, version)
		assert.Equal(t, variant, variant2)
		assert.Equal(t, version, version2)
	})

	t.Run("keeps both qualifiers", func(t *testing.T) {
		variant, version := NormalizeQualifiers("debug", "1.0")
		assert.Equal(t, "debug", variant)
		assert.Equal(t, "1_0", version)
	})

	t.Run("trims trailing separators", func(t *testing.T) {
		variant, version := NormalizeQualifiers("main;", "")
		assert.Equal(t, "main", variant)
		assert.Equal(t, "", version)
	})
}

func TestQualifiedAndCheckName(t *testing.T) {
	assert.Equal(t, "GLOBAL.acme.widget", QualifiedName("GLOBAL.acme.widget", "", ""))
	assert.Equal(t, "GLOBAL.acme.widget;2_0_0", QualifiedName("GLOBAL.acme.widget", "2_0_0", ""))
	assert.Equal(t, "GLOBAL.acme.widget;main;2_0_0", QualifiedName("GLOBAL.acme.widget", "main", "2_0_0"))
	// a version without variant is never rendered
	assert.Equal(t, "GLOBAL.acme.widget", QualifiedName("GLOBAL.acme.widget", "", "2_0_0"))

	assert.Equal(t, "widget;main;2_0_0", CheckName("GLOBAL.acme.widget", "main", "2_0_0"))
	assert.Equal(t, "widget", CheckName("widget", "", ""))
}
