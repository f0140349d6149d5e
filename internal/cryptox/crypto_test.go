package cryptox_test

import (
	"strings"
	"testing"

	"github.com/Totarae/PageBin/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест полного цикла: зашифровали — расшифровали
func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"многострочный\nтекст\nс юникодом",
		strings.Repeat("x", 10000),
		`{"json": true}`,
	}

	for _, plaintext := range cases {
		encoded, err := cryptox.Encrypt(plaintext, "secret-password")
		require.NoError(t, err)

		decoded, err := cryptox.Decrypt(encoded, "secret-password")
		require.NoError(t, err)
		assert.Equal(t, plaintext, decoded)
	}
}

// Неверный пароль должен давать ошибку аутентификации, а не мусор
func TestDecrypt_WrongPassword(t *testing.T) {
	encoded, err := cryptox.Encrypt("secret content", "correct-password")
	require.NoError(t, err)

	_, err = cryptox.Decrypt(encoded, "wrong-password")
	assert.ErrorIs(t, err, cryptox.ErrAuthenticationFailed)
}

// Формат salt:iv:ciphertext — все три компоненты обязательны
func TestDecrypt_InvalidFormat(t *testing.T) {
	cases := []string{
		"",
		"onlyonepart",
		"two:parts",
		"a:b:c:d",
		":missing:salt",
		"missing::iv",
		"missing:ciphertext:",
		"не-base64:тоже:совсем",
	}

	for _, encoded := range cases {
		_, err := cryptox.Decrypt(encoded, "password")
		assert.ErrorIs(t, err, cryptox.ErrInvalidFormat, "input=%q", encoded)
	}
}

// Подмена шифротекста должна ломать проверку целостности
func TestDecrypt_Tampered(t *testing.T) {
	encoded, err := cryptox.Encrypt("original", "password")
	require.NoError(t, err)

	parts := strings.Split(encoded, ":")
	require.Len(t, parts, 3)

	// Меняем последнюю компоненту на валидный base64 другого содержимого
	tampered := parts[0] + ":" + parts[1] + ":" + "QUFBQUFBQUFBQUFBQUFBQQ=="
	_, err = cryptox.Decrypt(tampered, "password")
	assert.ErrorIs(t, err, cryptox.ErrAuthenticationFailed)
}

// Одинаковый текст шифруется по-разному из-за случайных соли и вектора
func TestEncrypt_Nondeterministic(t *testing.T) {
	first, err := cryptox.Encrypt("same content", "password")
	require.NoError(t, err)
	second, err := cryptox.Encrypt("same content", "password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
