// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-seeder/pkg/seeder"
)

func TestSeedLittleEndian(t *testing.T) {
	t.Parallel()

	s, err := seeder.SeedFromBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), s.Lo())
	assert.Equal(t, uint64(2), s.Hi())
	assert.Equal(t, "00000000000000020000000000000001", s.String())
	assert.Equal(t, seeder.SeedFromUint64s(2, 1), s)

	_, err = seeder.SeedFromBytes(make([]byte, 15))
	assert.Error(t, err)
}

func TestSeedAddWraps(t *testing.T) {
	t.Parallel()

	maxSeed := seeder.SeedFromUint64s(math.MaxUint64, math.MaxUint64)
	one := seeder.SeedFromUint64s(0, 1)

	assert.True(t, maxSeed.Add(one).IsZero())
	assert.Equal(t, seeder.SeedFromUint64s(1, 0), seeder.SeedFromUint64s(0, math.MaxUint64).Add(one))
	assert.Equal(t, seeder.SeedFromUint64s(3, 5), seeder.SeedFromUint64s(1, 2).Add(seeder.SeedFromUint64s(2, 3)))
}

func TestSeedBigInt(t *testing.T) {
	t.Parallel()

	expected := new(big.Int).Lsh(big.NewInt(1), 64)
	expected.Add(expected, big.NewInt(7))

	assert.Equal(t, 0, expected.Cmp(seeder.SeedFromUint64s(1, 7).BigInt()))
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	s, err := seeder.ParseSeed("0x2a")
	require.NoError(t, err)
	assert.Equal(t, seeder.SeedFromUint64s(0, 42), s)

	original := seeder.SeedFromUint64s(0xdeadbeef, 0xcafebabe12345678)

	parsed, err := seeder.ParseSeed(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	for _, bad := range []string{"", "0x", "zz", "000000000000000000000000000000001"} {
		_, err = seeder.ParseSeed(bad)
		assert.Error(t, err, bad)
	}
}
