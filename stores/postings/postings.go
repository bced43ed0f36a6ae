package postings

import (
	"encoding/binary"
)

// Posting records that Item occurs in the transaction at position Tx.
type Posting struct {
	Item int32
	Tx   int32
}

type Iterator func() (Posting, error, Iterator)

// Index is an inverted index from items to the transactions holding them.
// Postings returns every posting of one item.
type Index interface {
	Add(p Posting) error
	Has(item int32) (bool, error)
	Postings(item int32) (Iterator, error)
	Delete() error
}

// Each runs do on every posting of the iterator made by run, stopping on the
// first error.
func Each(run func() (Iterator, error), do func(Posting) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var p Posting
	for p, err, it = it(); it != nil; p, err, it = it() {
		if e := do(p); e != nil {
			return e
		}
	}
	return err
}

// Item ids are stored big endian with the sign bit flipped, which makes the
// byte order of the keys the numeric order of the ids.
func encode(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i)^(1<<31))
	return bytes
}

func decode(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes) ^ (1 << 31))
}
