package codec

import (
	"sync"

	"github.com/uznami/rwbin/codec/internal/abi"
)

// Transfers larger than the cursor scratch borrow from this pool.
var transferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 2*abi.ScratchSize)
		return &buf
	},
}

func getTransferBuf(n int) *[]byte {
	buf := transferPool.Get().(*[]byte)
	if cap(*buf) < n {
		*buf = make([]byte, n)
	}
	*buf = (*buf)[:n]
	return buf
}

func putTransferBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > abi.MaxPooledSize {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	transferPool.Put(buf)
}
