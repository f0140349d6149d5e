// Package cryptox реализует клиентское шифрование содержимого страниц.
// Сервер видит только непрозрачный шифротекст: ни пароль, ни открытый
// текст его границы не пересекают.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Параметры PBKDF2: 100 000 итераций SHA-256, ключ AES-256.
	keyIterations = 100000
	keySize       = 32
	saltSize      = 16
	nonceSize     = 12
)

var (
	// ErrInvalidFormat — строка не разбирается на три компоненты salt:iv:ciphertext.
	ErrInvalidFormat = errors.New("invalid encrypted content format")
	// ErrAuthenticationFailed — неверный пароль или данные были изменены.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong password or tampered data")
)

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, keyIterations, keySize, sha256.New)
}

// Encrypt шифрует текст паролем и возвращает строку вида
// base64(salt):base64(iv):base64(ciphertext).
// Соль и одноразовый вектор генерируются заново при каждом вызове,
// так что одинаковый текст шифруется по-разному.
func Encrypt(plaintext, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	ciphertext := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	return fmt.Sprintf("%s:%s:%s",
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(ciphertext),
	), nil
}

// Decrypt разбирает строку salt:iv:ciphertext, восстанавливает ключ
// из пароля и сохранённой соли и расшифровывает содержимое.
// AES-GCM сам проверяет целостность: при неверном пароле или
// подменённых данных возвращается ErrAuthenticationFailed.
func Decrypt(encoded, password string) (string, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", ErrInvalidFormat
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidFormat
	}
	nonce, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(nonce) != nonceSize {
		return "", ErrInvalidFormat
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidFormat
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	return string(plaintext), nil
}
