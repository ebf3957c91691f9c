package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"crowdfund_vault/sdk"
)

func TestIndexChunkRollover(t *testing.T) {
	sdk.MockReset()
	base := stakerIndexBase(1)

	total := indexChunkSize + 10
	for i := 0; i < total; i++ {
		indexAppend(base, sdk.Address(fmt.Sprintf("hive:user-%d", i)))
	}
	assert.EqualValues(t, 2, indexChunkCount(base))

	var seen []string
	indexWalk(base, func(addr sdk.Address) {
		seen = append(seen, addr.String())
	})
	assert.Len(t, seen, total)
	assert.Equal(t, "hive:user-0", seen[0])
	assert.Equal(t, fmt.Sprintf("hive:user-%d", total-1), seen[total-1])
}

func TestIndexRemove(t *testing.T) {
	sdk.MockReset()
	base := donorIndexBase(2)

	for i := 0; i < 5; i++ {
		indexAppend(base, sdk.Address(fmt.Sprintf("hive:user-%d", i)))
	}
	indexRemove(base, sdk.Address("hive:user-2"))

	var seen []string
	indexWalk(base, func(addr sdk.Address) {
		seen = append(seen, addr.String())
	})
	assert.Equal(t, []string{"hive:user-0", "hive:user-1", "hive:user-3", "hive:user-4"}, seen)

	// removing something absent is a no-op
	indexRemove(base, sdk.Address("hive:ghost"))
	assert.EqualValues(t, 1, indexChunkCount(base))
}
