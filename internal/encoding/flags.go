package encoding

import (
	"github.com/boljen/go-bitmap"
)

// Pack turns an 8 bit bitmap into a uint8 where bit n of the bitmap
// is the value 1<<n.
func Pack(bm bitmap.Bitmap) uint8 {
	data := bm.Data(false)
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// Unpack turns a uint8 into an 8 bit bitmap (the inverse of Pack).
func Unpack(in uint8) bitmap.Bitmap {
	// uint8 is only one byte anyways right
	return bitmap.Bitmap([]byte{in})
}
