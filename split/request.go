package split

import (
	"encoding/binary"
	"fmt"
)

const minRequestSize = 10 // amount(8) + first flag(1) + second flag(1)

// DecodeRequest parses an instruction payload into a PaymentRequest.
// Layout: little-endian uint64 amount at offset 0, presence flag bytes at
// offsets 8 and 9 (nonzero means present). Bytes beyond the first 10 are
// ignored.
func DecodeRequest(data []byte) (PaymentRequest, error) {
	if len(data) < minRequestSize {
		return PaymentRequest{}, fmt.Errorf("%w: expected at least %d bytes, got %d",
			ErrShortInstructionData, minRequestSize, len(data))
	}
	return PaymentRequest{
		Amount:            binary.LittleEndian.Uint64(data[0:8]),
		HasFirstReferrer:  data[8] != 0,
		HasSecondReferrer: data[9] != 0,
	}, nil
}

// EncodeRequest serializes a PaymentRequest into the 10-byte instruction
// payload consumed by DecodeRequest.
func EncodeRequest(req PaymentRequest) []byte {
	buf := make([]byte, minRequestSize)
	binary.LittleEndian.PutUint64(buf[0:8], req.Amount)
	if req.HasFirstReferrer {
		buf[8] = 1
	}
	if req.HasSecondReferrer {
		buf[9] = 1
	}
	return buf
}
