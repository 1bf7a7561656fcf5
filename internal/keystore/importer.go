package keystore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yeka/zip"
)

// ImportText reads API keys from a plain text file, one per line. Blank
// lines are skipped.
func ImportText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	keys := splitKeys(string(data))
	if len(keys) == 0 {
		return nil, errors.New("no API keys found in the text file")
	}
	return keys, nil
}

// ImportZip reads API keys from the first .txt entry of a password-protected
// zip archive. The archive must actually be encrypted; an unprotected
// archive is rejected so keys are not distributed in the clear by accident.
func ImportZip(path, password string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("invalid zip file: %w", err)
	}
	defer reader.Close()

	var entry *zip.File
	for _, f := range reader.File {
		if strings.HasPrefix(f.Name, "__MACOSX") {
			continue
		}
		if strings.HasSuffix(strings.ToLower(f.Name), ".txt") {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, errors.New("no text file found in the zip archive")
	}
	if !entry.IsEncrypted() {
		return nil, errors.New("file is not password protected; create a password-protected zip file")
	}

	entry.SetPassword(password)
	rc, err := entry.Open()
	if err != nil {
		return nil, errors.New("file cannot be imported - incorrect password")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		// AES archives report a bad password on read, not on open.
		return nil, errors.New("file cannot be imported - incorrect password")
	}

	keys := splitKeys(string(data))
	if len(keys) == 0 {
		return nil, errors.New("no API keys found in the text file")
	}
	return keys, nil
}

func splitKeys(content string) []string {
	var keys []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			keys = append(keys, line)
		}
	}
	return keys
}
