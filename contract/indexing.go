package main

import (
	"strconv"

	"crowdfund_vault/sdk"
)

// Address indexes are append-mostly lists split into fixed-size chunks so a
// single state row never grows unbounded. Chunk 0..n-1 live under
// base+":"+chunkNo, the chunk count under base+":n".

const indexChunkSize = 250

func indexCountKey(base string) string {
	return base + ":n"
}

func indexChunkKey(base string, chunk uint64) string {
	return base + ":" + strconv.FormatUint(chunk, 10)
}

func indexChunkCount(base string) uint64 {
	raw := sdk.StateGetObject(indexCountKey(base))
	if raw == nil {
		return 0
	}
	n, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt index counter")
	}
	return n
}

func loadIndexChunk(base string, chunk uint64) []string {
	raw := sdk.StateGetObject(indexChunkKey(base, chunk))
	if raw == nil {
		return nil
	}
	addrs, err := decodeAddressChunk(*raw)
	if err != nil {
		sdk.Abort("corrupt index chunk")
	}
	return addrs
}

func saveIndexChunk(base string, chunk uint64, addrs []string) {
	sdk.StateSetObject(indexChunkKey(base, chunk), encodeAddressChunk(addrs))
}

// indexAppend adds the address to the last chunk, rolling over to a fresh
// chunk when full. Callers dedupe via their own per-address records.
func indexAppend(base string, addr sdk.Address) {
	n := indexChunkCount(base)
	if n == 0 {
		saveIndexChunk(base, 0, []string{addr.String()})
		sdk.StateSetObject(indexCountKey(base), "1")
		return
	}
	last := n - 1
	addrs := loadIndexChunk(base, last)
	if len(addrs) >= indexChunkSize {
		saveIndexChunk(base, n, []string{addr.String()})
		sdk.StateSetObject(indexCountKey(base), strconv.FormatUint(n+1, 10))
		return
	}
	saveIndexChunk(base, last, append(addrs, addr.String()))
}

// indexWalk visits every indexed address in insertion order.
func indexWalk(base string, visit func(addr sdk.Address)) {
	n := indexChunkCount(base)
	for chunk := uint64(0); chunk < n; chunk++ {
		for _, a := range loadIndexChunk(base, chunk) {
			visit(sdk.Address(a))
		}
	}
}

// indexRemove drops one address, compacting within its chunk. Chunks shrink
// but never merge, keeping removal cheap.
func indexRemove(base string, addr sdk.Address) {
	n := indexChunkCount(base)
	want := addr.String()
	for chunk := uint64(0); chunk < n; chunk++ {
		addrs := loadIndexChunk(base, chunk)
		for i, a := range addrs {
			if a != want {
				continue
			}
			addrs = append(addrs[:i], addrs[i+1:]...)
			saveIndexChunk(base, chunk, addrs)
			return
		}
	}
}
