// This file is part of Gomotion.
//
// Gomotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gomotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gomotion.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gomotion/paths"
	"github.com/jetsetilly/gomotion/test"
)

func TestResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	// a base directory in the current directory takes precedence
	test.DemandSuccess(t, os.Mkdir(".gomotion", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".gomotion", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".gomotion", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".gomotion", "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), ".gomotion")

	p, err := paths.MakeResourcePath("scripts", "test.yaml")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".gomotion", "scripts", "test.yaml"))

	_, err = os.Stat(filepath.Join(".gomotion", "scripts"))
	test.ExpectSuccess(t, err)
}
