// This file is part of Cabinet.
//
// Cabinet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cabinet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cabinet.  If not, see <https://www.gnu.org/licenses/>.

package govern_test

import (
	"testing"

	"github.com/cabinet-emu/cabinet/govern"
	"github.com/cabinet-emu/cabinet/test"
)

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, govern.Running.String(), "running")
	test.ExpectEquality(t, govern.Ending.String(), "ending")
	test.ExpectEquality(t, govern.Undefined.String(), "undefined")
	test.ExpectEquality(t, govern.State(99).String(), "state(99)")
}
