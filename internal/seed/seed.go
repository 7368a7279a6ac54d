// Package seed описывает данные начального заполнения: allow-list пользователей и пример инвентаря.
package seed

import (
	"ITInventory/internal/model"
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type itemYAML struct {
	DeviceName   string `yaml:"device_name"`
	SerialNumber string `yaml:"serial_number"`
	Location     string `yaml:"location"`
	Status       string `yaml:"status"`
	AssignedTo   string `yaml:"assigned_to"`
}

type fileYAML struct {
	Users     []model.Credential `yaml:"users"`
	Inventory []itemYAML         `yaml:"inventory"`
}

// Data — разобранный файл начального заполнения.
type Data struct {
	Users     []model.Credential
	Inventory []model.ItemFields
}

// Default возвращает встроенные данные.
func Default() Data {
	d, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded seed data is invalid: %v", err))
	}
	return d
}

// Load читает данные из файла; пустой path означает встроенные данные.
func Load(path string) (Data, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse разбирает YAML. Неизвестные ключи считаются ошибкой, чтобы опечатки не терялись молча.
func Parse(b []byte) (Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var f fileYAML
	if err := dec.Decode(&f); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}
	d := Data{Users: f.Users, Inventory: make([]model.ItemFields, 0, len(f.Inventory))}
	for i, u := range f.Users {
		if u.Username == "" {
			return Data{}, fmt.Errorf("parse seed: user #%d has empty username", i+1)
		}
	}
	for _, it := range f.Inventory {
		d.Inventory = append(d.Inventory, model.ItemFields{
			DeviceName:   it.DeviceName,
			SerialNumber: it.SerialNumber,
			Location:     it.Location,
			Status:       it.Status,
			AssignedTo:   it.AssignedTo,
		})
	}
	return d, nil
}
