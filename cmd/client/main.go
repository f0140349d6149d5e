// Клиент командной строки для PageBin.
// Шифрование выполняется только здесь: сервер получает готовый
// шифротекст и флаг encrypted, пароль никуда не передаётся.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"syscall"

	"github.com/Totarae/PageBin/internal/cryptox"
	"github.com/Totarae/PageBin/internal/model"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	server := flag.String("s", "http://localhost:8080", "server base URL")
	getName := flag.String("get", "", "fetch page by name")
	createName := flag.String("create", "", "create page with name")
	filePath := flag.String("f", "", "read content from file (default stdin)")
	password := flag.String("p", "", "password for encryption/decryption")
	encrypt := flag.Bool("encrypt", false, "encrypt content before upload")
	expires := flag.Int("expires", 0, "expiry in hours (0 = never)")
	viewOnce := flag.Bool("once", false, "delete page after first read")
	suggest := flag.Bool("suggest", false, "ask the server for a free name")
	flag.Parse()

	base := strings.TrimSuffix(*server, "/")

	switch {
	case *suggest:
		return suggestName(base)
	case *createName != "":
		return createPage(base, *createName, *filePath, *password, *encrypt, *expires, *viewOnce)
	case *getName != "":
		return getPage(base, *getName, *password)
	default:
		flag.Usage()
		return errors.New("one of -get, -create or -suggest is required")
	}
}

func suggestName(base string) error {
	resp, err := http.Get(base + "/api/suggestions/next-name")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	var suggestion model.SuggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return err
	}
	fmt.Println(suggestion.Value)
	return nil
}

func createPage(base, name, filePath, password string, encrypt bool, expires int, viewOnce bool) error {
	content, err := readContent(filePath)
	if err != nil {
		return err
	}

	if encrypt {
		pw, err := resolvePassword(password)
		if err != nil {
			return err
		}
		content, err = cryptox.Encrypt(content, pw)
		if err != nil {
			return err
		}
	}

	reqBody := model.CreatePageRequest{
		Content:        content,
		Encrypted:      encrypt,
		ExpiresInHours: expires,
	}
	if viewOnce {
		v := true
		reqBody.ViewOnceOnly = &v
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	resp, err := http.Post(base+"/api/pages/"+name, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return apiError(resp)
	}

	var page model.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return err
	}
	fmt.Printf("created page %q (created_at %s)\n", page.Name, page.CreatedAt)
	return nil
}

func getPage(base, name, password string) error {
	resp, err := http.Get(base + "/api/pages/" + name)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	var page model.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return err
	}

	content := page.Content
	if page.Encrypted == 1 {
		pw, err := resolvePassword(password)
		if err != nil {
			return err
		}
		content, err = cryptox.Decrypt(content, pw)
		if err != nil {
			return err
		}
	}

	fmt.Println(content)
	return nil
}

// readContent читает содержимое из файла или из stdin.
func readContent(filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// resolvePassword возвращает пароль из флага или запрашивает его
// у терминала без эха.
func resolvePassword(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("empty password")
	}
	return string(raw), nil
}

func apiError(resp *http.Response) error {
	var body model.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server: %s (HTTP %d)", body.Error, resp.StatusCode)
	}
	return fmt.Errorf("server returned HTTP %d", resp.StatusCode)
}
