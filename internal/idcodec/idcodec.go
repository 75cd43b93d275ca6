// Package idcodec turns database ids into the opaque identifiers exposed over
// HTTP and back.
package idcodec

import (
	"errors"

	"github.com/sqids/sqids-go"
)

var ErrInvalidID = errors.New("invalid id")

type Codec struct {
	sqids *sqids.Sqids
}

func New(alphabet string) (*Codec, error) {
	opts := sqids.Options{MinLength: 6}
	if alphabet != "" {
		opts.Alphabet = alphabet
	}
	s, err := sqids.New(opts)
	if err != nil {
		return nil, err
	}
	return &Codec{sqids: s}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 {
		return "", ErrInvalidID
	}
	return c.sqids.Encode([]uint64{uint64(id)})
}

// Decode rejects anything that is not the canonical encoding of exactly one
// id, so every record has a single public identifier.
func (c *Codec) Decode(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidID
	}
	nums := c.sqids.Decode(s)
	if len(nums) != 1 || nums[0] > uint64(1<<63-1) {
		return 0, ErrInvalidID
	}
	canonical, err := c.sqids.Encode(nums)
	if err != nil || canonical != s {
		return 0, ErrInvalidID
	}
	return int64(nums[0]), nil
}
