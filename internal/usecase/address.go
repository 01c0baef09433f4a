package usecase

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"

	"github.com/mr-tron/base58"

	"TronLens/internal/domain/models"
)

var (
	ethAddressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	trxAddressRe = regexp.MustCompile(`^T[a-zA-Z0-9]{33}$`)
)

// tronPrefix is the leading byte of every mainnet TRON address payload.
const tronPrefix = 0x41

var errChecksum = errors.New("address checksum mismatch")

// DetectAddressType classifies addr by shape only; it does not validate checksums.
func DetectAddressType(addr string) models.AddressType {
	switch {
	case ethAddressRe.MatchString(addr):
		return models.AddressETH
	case trxAddressRe.MatchString(addr):
		return models.AddressTRX
	default:
		return models.AddressUnknown
	}
}

// TronHexAddress decodes a base58check TRON address into its 21-byte hex form.
func TronHexAddress(addr string) (string, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return "", err
	}
	if len(raw) != 25 {
		return "", ErrInvalidAddress
	}
	payload, sum := raw[:21], raw[21:]
	if payload[0] != tronPrefix {
		return "", ErrInvalidAddress
	}
	if !bytes.Equal(checksum(payload), sum) {
		return "", errChecksum
	}
	return hex.EncodeToString(payload), nil
}

// DescribeAddress returns the type and, for well-formed TRX addresses, the hex form.
func DescribeAddress(addr string) models.AddressInfo {
	info := models.AddressInfo{Address: addr, Type: DetectAddressType(addr)}
	if info.Type == models.AddressTRX {
		if h, err := TronHexAddress(addr); err == nil {
			info.Hex = h
		}
	}
	return info
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}
