// Package rwbin is a binary serialization core built around two bounded stream cursors.
//
// A codec.Reader turns bytes from a Source into typed values and a codec.Writer
// turns values into bytes on a Sink. Both cursors carry a byte order chosen at
// construction, count every byte they transfer, and refuse any transfer that
// would cross their ceiling before touching the transport.
//
// # Architecture Overview
//
//	rwbin/               Root package with the Source, Sink, Flusher and Memory interfaces
//	├── endian/          Little and Big byte orders
//	├── codec/           Reader and Writer cursors, primitives, composites, strings
//	├── wasmio/          Cursors over WebAssembly linear memory
//	├── layout/          Textual field layouts decoded through the codec
//	├── errors/          Structured error types
//	└── cmd/rwbin/       Inspector CLI
//
// # Quick Start
//
// Decode a header from a byte slice:
//
//	r := codec.FromBytes(data, endian.Little)
//	magic, err := r.U32()
//	if err != nil {
//		return err
//	}
//	name, err := r.UTF8String(codec.Fixed(16))
//
// Types implement codec.Decoder and codec.Encoder to take part in the
// generic helpers:
//
//	func (h *Header) DecodeBinary(r *codec.Reader) error {
//		var err error
//		if h.Version, err = r.U16(); err != nil {
//			return err
//		}
//		h.Flags, err = r.U16()
//		return err
//	}
//
//	hdr, err := codec.Read[Header](r)
//
// # Budgets
//
// A cursor may carry a ceiling. codec.ReadPartial narrows it for the span of one
// nested value and restores it on return, so a sub-structure can never read
// past its declared size:
//
//	body, err := codec.ReadPartial(r, int(size), codec.Read[Body])
//
// # Byte Order
//
// A single field stored in the other byte order is read through a swapped view
// that shares the transport and position:
//
//	v, err := codec.ReadSwapped(r, (*codec.Reader).U32)
//
// # Concurrency
//
// A cursor has a single owner. Run cursors on separate goroutines for
// concurrent work and bind them to a context with WithContext for cancellation.
package rwbin
