// Package wasmio adapts WebAssembly linear memory to the codec cursors.
//
// A region of guest memory is exposed as an io.Reader or io.Writer and wrapped
// in a codec cursor whose ceiling is the region length, so a decoder can never
// read outside the region it was given:
//
//	mod, _ := runtime.Instantiate(ctx, wasmBytes)
//	r, err := wasmio.Decode(mod.Memory(), ptr, size, endian.Little)
//	if err != nil {
//		return err
//	}
//	hdr, err := codec.Read[Header](r)
//
// Any value with Read, Write and Size methods matching wazero's api.Memory
// can be used, see rwbin.Memory.
package wasmio
