// Package sample holds the built-in demonstration dataset and loads replacement
// fixtures from YAML.
package sample

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"bizdash/internal/storage"

	"gopkg.in/yaml.v3"
)

// Default returns a fresh copy of the built-in dataset.
func Default() *storage.Dataset {
	return &storage.Dataset{
		Customers: customers(),
		Sales:     sales(),
		Campaigns: campaigns(),
		Tickets:   tickets(),

		Sites:       sites(),
		Orders:      orders(),
		Inspections: inspections(),
		Maintenance: maintenance(),
		Plan:        plan(),

		Projects:  projects(),
		Tasks:     tasks(),
		Resources: resources(),
		Events:    events(),

		General:       general(),
		Profile:       profile(),
		Security:      security(),
		Notifications: notifications(),
		Integrations:  integrations(),
	}
}

// LoadFile reads a YAML fixture. Sections present in the file replace the
// corresponding built-in section; absent sections keep the defaults.
func LoadFile(path string) (*storage.Dataset, error) {
	const op = "storage.sample.LoadFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}

	return ds, nil
}

func Decode(r io.Reader) (*storage.Dataset, error) {
	const op = "storage.sample.Decode"

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return ds, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := Validate(ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ds, nil
}

// Validate checks the percentage fields of a dataset; everything else is free text.
func Validate(ds *storage.Dataset) error {
	check := func(kind string, id int, v int) error {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s %d: percentage %d out of range [0,100]", kind, id, v)
		}
		return nil
	}

	for _, s := range ds.Sites {
		if err := check("site", s.ID, s.Capacity); err != nil {
			return err
		}
	}
	for _, o := range ds.Orders {
		if err := check("order", o.ID, o.Progress); err != nil {
			return err
		}
	}
	for _, p := range ds.Plan {
		if err := check("plan item", p.ID, p.Capacity); err != nil {
			return err
		}
	}
	for _, p := range ds.Projects {
		if err := check("project", p.ID, p.Progress); err != nil {
			return err
		}
	}
	for _, r := range ds.Resources {
		if err := check("resource", r.ID, r.Allocation); err != nil {
			return err
		}
	}

	return nil
}
