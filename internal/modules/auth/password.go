package auth

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// VerifyPassword checks password against a stored hash. Besides bcrypt it
// accepts the werkzeug formats the first deployment wrote:
//
//	pbkdf2:sha256:600000$salt$hexdigest
//	scrypt:32768:8:1$salt$hexdigest
func VerifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	method, salt, digest, ok := splitWerkzeug(stored)
	if !ok {
		return false
	}
	want, err := hex.DecodeString(digest)
	if err != nil || len(want) == 0 {
		return false
	}

	var got []byte
	params := strings.Split(method, ":")
	switch params[0] {
	case "pbkdf2":
		got, ok = pbkdf2Key(params[1:], salt, password, len(want))
	case "scrypt":
		got, ok = scryptKey(params[1:], salt, password, len(want))
	default:
		return false
	}
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

func splitWerkzeug(stored string) (method, salt, digest string, ok bool) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func pbkdf2Key(params []string, salt, password string, size int) ([]byte, bool) {
	name, iterations := "sha256", 600000
	if len(params) > 0 {
		name = params[0]
	}
	if len(params) > 1 {
		n, err := strconv.Atoi(params[1])
		if err != nil || n <= 0 {
			return nil, false
		}
		iterations = n
	}

	var h func() hash.Hash
	switch name {
	case "sha1":
		h = sha1.New
	case "sha256":
		h = sha256.New
	case "sha512":
		h = sha512.New
	default:
		return nil, false
	}
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, size, h), true
}

func scryptKey(params []string, salt, password string, size int) ([]byte, bool) {
	n, r, p := 32768, 8, 1
	if len(params) == 3 {
		var err error
		if n, err = strconv.Atoi(params[0]); err != nil {
			return nil, false
		}
		if r, err = strconv.Atoi(params[1]); err != nil {
			return nil, false
		}
		if p, err = strconv.Atoi(params[2]); err != nil {
			return nil, false
		}
	}
	key, err := scrypt.Key([]byte(password), []byte(salt), n, r, p, size)
	if err != nil {
		return nil, false
	}
	return key, true
}
