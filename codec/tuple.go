package codec

// Tuples are decoded and encoded element by element in declared order with
// no padding between elements.

type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

func DecodeTuple2[A, B any](da DecodeFunc[A], db DecodeFunc[B]) DecodeFunc[Tuple2[A, B]] {
	return func(r *Reader) (t Tuple2[A, B], err error) {
		if t.V0, err = da(r); err != nil {
			return t, err
		}
		t.V1, err = db(r)
		return t, err
	}
}

func DecodeTuple3[A, B, C any](da DecodeFunc[A], db DecodeFunc[B], dc DecodeFunc[C]) DecodeFunc[Tuple3[A, B, C]] {
	return func(r *Reader) (t Tuple3[A, B, C], err error) {
		if t.V0, err = da(r); err != nil {
			return t, err
		}
		if t.V1, err = db(r); err != nil {
			return t, err
		}
		t.V2, err = dc(r)
		return t, err
	}
}

func DecodeTuple4[A, B, C, D any](da DecodeFunc[A], db DecodeFunc[B], dc DecodeFunc[C], dd DecodeFunc[D]) DecodeFunc[Tuple4[A, B, C, D]] {
	return func(r *Reader) (t Tuple4[A, B, C, D], err error) {
		if t.V0, err = da(r); err != nil {
			return t, err
		}
		if t.V1, err = db(r); err != nil {
			return t, err
		}
		if t.V2, err = dc(r); err != nil {
			return t, err
		}
		t.V3, err = dd(r)
		return t, err
	}
}

func DecodeTuple5[A, B, C, D, E any](da DecodeFunc[A], db DecodeFunc[B], dc DecodeFunc[C], dd DecodeFunc[D], de DecodeFunc[E]) DecodeFunc[Tuple5[A, B, C, D, E]] {
	return func(r *Reader) (t Tuple5[A, B, C, D, E], err error) {
		if t.V0, err = da(r); err != nil {
			return t, err
		}
		if t.V1, err = db(r); err != nil {
			return t, err
		}
		if t.V2, err = dc(r); err != nil {
			return t, err
		}
		if t.V3, err = dd(r); err != nil {
			return t, err
		}
		t.V4, err = de(r)
		return t, err
	}
}

func DecodeTuple6[A, B, C, D, E, F any](da DecodeFunc[A], db DecodeFunc[B], dc DecodeFunc[C], dd DecodeFunc[D], de DecodeFunc[E], df DecodeFunc[F]) DecodeFunc[Tuple6[A, B, C, D, E, F]] {
	return func(r *Reader) (t Tuple6[A, B, C, D, E, F], err error) {
		if t.V0, err = da(r); err != nil {
			return t, err
		}
		if t.V1, err = db(r); err != nil {
			return t, err
		}
		if t.V2, err = dc(r); err != nil {
			return t, err
		}
		if t.V3, err = dd(r); err != nil {
			return t, err
		}
		if t.V4, err = de(r); err != nil {
			return t, err
		}
		t.V5, err = df(r)
		return t, err
	}
}

func EncodeTuple2[A, B any](ea EncodeFunc[A], eb EncodeFunc[B]) EncodeFunc[Tuple2[A, B]] {
	return func(w *Writer, t Tuple2[A, B]) error {
		if err := ea(w, t.V0); err != nil {
			return err
		}
		return eb(w, t.V1)
	}
}

func EncodeTuple3[A, B, C any](ea EncodeFunc[A], eb EncodeFunc[B], ec EncodeFunc[C]) EncodeFunc[Tuple3[A, B, C]] {
	return func(w *Writer, t Tuple3[A, B, C]) error {
		if err := ea(w, t.V0); err != nil {
			return err
		}
		if err := eb(w, t.V1); err != nil {
			return err
		}
		return ec(w, t.V2)
	}
}

func EncodeTuple4[A, B, C, D any](ea EncodeFunc[A], eb EncodeFunc[B], ec EncodeFunc[C], ed EncodeFunc[D]) EncodeFunc[Tuple4[A, B, C, D]] {
	return func(w *Writer, t Tuple4[A, B, C, D]) error {
		if err := ea(w, t.V0); err != nil {
			return err
		}
		if err := eb(w, t.V1); err != nil {
			return err
		}
		if err := ec(w, t.V2); err != nil {
			return err
		}
		return ed(w, t.V3)
	}
}

func EncodeTuple5[A, B, C, D, E any](ea EncodeFunc[A], eb EncodeFunc[B], ec EncodeFunc[C], ed EncodeFunc[D], ee EncodeFunc[E]) EncodeFunc[Tuple5[A, B, C, D, E]] {
	return func(w *Writer, t Tuple5[A, B, C, D, E]) error {
		if err := ea(w, t.V0); err != nil {
			return err
		}
		if err := eb(w, t.V1); err != nil {
			return err
		}
		if err := ec(w, t.V2); err != nil {
			return err
		}
		if err := ed(w, t.V3); err != nil {
			return err
		}
		return ee(w, t.V4)
	}
}

func EncodeTuple6[A, B, C, D, E, F any](ea EncodeFunc[A], eb EncodeFunc[B], ec EncodeFunc[C], ed EncodeFunc[D], ee EncodeFunc[E], ef EncodeFunc[F]) EncodeFunc[Tuple6[A, B, C, D, E, F]] {
	return func(w *Writer, t Tuple6[A, B, C, D, E, F]) error {
		if err := ea(w, t.V0); err != nil {
			return err
		}
		if err := eb(w, t.V1); err != nil {
			return err
		}
		if err := ec(w, t.V2); err != nil {
			return err
		}
		if err := ed(w, t.V3); err != nil {
			return err
		}
		if err := ee(w, t.V4); err != nil {
			return err
		}
		return ef(w, t.V5)
	}
}
