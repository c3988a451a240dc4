package webserver

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Well-known substrate dev address (prefix 42) and its sr25519 public key.
const (
	aliceSS58   = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	alicePubHex = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
)

func TestDecodeSS58(t *testing.T) {
	pub, err := decodeSS58(aliceSS58)
	require.NoError(t, err)
	require.Equal(t, alicePubHex, hex.EncodeToString(pub))
}

func TestDecodeSS58RejectsBadChecksum(t *testing.T) {
	tampered := aliceSS58[:len(aliceSS58)-1] + "X"
	_, err := decodeSS58(tampered)
	require.Error(t, err)
}

func TestDecodeSS58HexPassthrough(t *testing.T) {
	pub, err := decodeSS58("0x" + alicePubHex)
	require.NoError(t, err)
	require.Equal(t, alicePubHex, hex.EncodeToString(pub))
}

func TestDecodeSS58RejectsGarbage(t *testing.T) {
	_, err := decodeSS58("not-an-address")
	require.Error(t, err)
}

func TestVerifySignatureRejectsMalformed(t *testing.T) {
	// Wrong signature length.
	err := verifySignature(aliceSS58, "0xdead", "nonce")
	require.Error(t, err)

	// Signature of the right length but not a valid point.
	bad := make([]byte, 64)
	err = verifySignature(aliceSS58, hex.EncodeToString(bad), "nonce")
	require.Error(t, err)
}
