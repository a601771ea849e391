package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode holds CBOR encoding options with canonical mode for
// deterministic encoding. cborDecMode converts unsigned integers to
// signed on decode so round-tripped field values stay int64.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	dm, err := cbor.DecOptions{IntDec: cbor.IntDecConvertSigned}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

// Marshal serializes an InstanceSnapshot to CBOR bytes.
func Marshal(s *InstanceSnapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// Unmarshal deserializes an InstanceSnapshot from CBOR bytes.
func Unmarshal(data []byte) (*InstanceSnapshot, error) {
	var s InstanceSnapshot
	if err := cborDecMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal instance snapshot: %w", err)
	}
	return &s, nil
}

// MarshalDigest serializes a ClassDigest to CBOR bytes.
func MarshalDigest(d *ClassDigest) ([]byte, error) {
	return cborEncMode.Marshal(d)
}

// UnmarshalDigest deserializes a ClassDigest from CBOR bytes.
func UnmarshalDigest(data []byte) (*ClassDigest, error) {
	var d ClassDigest
	if err := cborDecMode.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal class digest: %w", err)
	}
	return &d, nil
}
