/*
 * smina_test.go, part of ligan.
 *
 * Copyright 2024 The ligan Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package atomtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmina(t *testing.T) {
	st, err := Smina(2)
	require.NoError(t, err)
	assert.Equal(t, "AliphaticCarbonXSHydrophobe", st.Name)
	assert.Equal(t, "LigandAliphaticCarbonXSHydrophobe", st.ChannelName(LigandPrefix))

	_, err = Smina(-1)
	assert.Error(t, err)
	_, err = Smina(NumSmina)
	assert.Error(t, err)
}

func TestSminaCode(t *testing.T) {
	for i, st := range SminaTypes() {
		code, ok := SminaCode(st.Name)
		require.True(t, ok, st.Name)
		assert.Equal(t, i, code)
		assert.Positive(t, st.CovalentRadius, st.Name)
	}
	_, ok := SminaCode("Unobtainium")
	assert.False(t, ok)
}

func TestSminaTypesIsCopy(t *testing.T) {
	all := SminaTypes()
	all[0].Name = "changed"
	st, _ := Smina(0)
	assert.Equal(t, "Hydrogen", st.Name)
}
