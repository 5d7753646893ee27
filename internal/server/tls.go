package server

import (
	"crypto/tls"
	"encoding/pem"
	"errors"
	"os"
)

// LoadKeyPair builds a certificate from PEM files holding the chain and
// the private key in any order. The first key found wins.
func LoadKeyPair(files []string) (tls.Certificate, error) {
	var chain []byte
	var key []byte
	for _, file := range files {
		rest, err := os.ReadFile(file)
		if err != nil {
			return tls.Certificate{}, err
		}
		for {
			var block *pem.Block
			block, rest = pem.Decode(rest)
			if block == nil {
				break
			}
			switch block.Type {
			case "CERTIFICATE":
				chain = append(chain, pem.EncodeToMemory(block)...)
			case "PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY":
				if key == nil {
					key = pem.EncodeToMemory(block)
				}
			}
		}
	}
	if chain == nil {
		return tls.Certificate{}, errors.New("tls bundle: no certificate found")
	}
	if key == nil {
		return tls.Certificate{}, errors.New("tls bundle: no private key found")
	}
	return tls.X509KeyPair(chain, key)
}

// TLSConfig returns a server TLS config for the PEM files, or nil when no
// files are given.
func TLSConfig(files []string) (*tls.Config, error) {
	if len(files) == 0 {
		return nil, nil
	}
	cert, err := LoadKeyPair(files)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
	}, nil
}
