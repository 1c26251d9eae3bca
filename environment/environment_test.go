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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gomotion/environment"
	"github.com/jetsetilly/gomotion/logger"
	"github.com/jetsetilly/gomotion/test"
)

func TestEnvironment(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.Prefs != nil)
	test.ExpectSuccess(t, env.AllowLogging())

	var perm logger.Permission = env
	test.ExpectSuccess(t, perm.AllowLogging())

	preview, err := environment.NewEnvironment("preview", env.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, preview.AllowLogging())
	test.ExpectSuccess(t, preview.Prefs == env.Prefs)
	test.ExpectSuccess(t, preview.IsEmulation("preview"))
}
