package handler

import (
	"bytes"
	"sync"
)

// encodeBufferSize fits a full ledger view without growing
const encodeBufferSize = 2048

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers instead of pinning their memory in the pool
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*encodeBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
