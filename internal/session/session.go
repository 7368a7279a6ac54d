// Package session хранит логин вошедшего пользователя между запусками CLI.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession — пользователь не выполнил вход.
var ErrNoSession = errors.New("not logged in: run `itinventory login` first")

// FileStore — файловое хранилище логина.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// SaveLogin сохраняет логин пользователя в файл.
func (s *FileStore) SaveLogin(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("session dir: %w", err)
	}
	return os.WriteFile(s.Path, []byte(login), 0o600)
}

// LoadLogin читает логин пользователя из файла.
// Отсутствующий или пустой файл — ErrNoSession.
func (s *FileStore) LoadLogin() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы; в логине пробелы внутри допустимы
	login := strings.TrimRight(string(b), " \t\r\n")
	if login == "" {
		return "", ErrNoSession
	}
	return login, nil
}

// Clear удаляет файл сессии. Отсутствие файла ошибкой не считается.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
