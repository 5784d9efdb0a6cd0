package security

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

func ParsePublicKey(pkey []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pkey)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, errors.New("no pem block found")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPub, nil
}

// ParseBase64PublicKey accepts the PEM either padded or raw base64 encoded, the way the
// auth service publishes JWT_PUBLIC_KEY.
func ParseBase64PublicKey(encoded string) (*rsa.PublicKey, error) {
	encoded = strings.TrimSpace(encoded)

	pemBytes, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}

	return ParsePublicKey(pemBytes)
}
