package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const indent = "    "

// Store implements ports.OrderStore on top of a directory of JSON files.
// A store name is a file name relative to the directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore creates a store rooted at dir. The directory must exist before Save is called.
func NewStore(dir string, logger *log.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Load reads the named store. A missing, empty or unparsable file yields an
// empty sequence. Records breaking the domain rules are skipped with a warning
// and the remaining records are kept.
func (s *Store) Load(_ context.Context, name string) []*order.Order {
	orders, err := s.read(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warnf("store %s is unreadable, starting empty: %v", name, err)
		}
		return []*order.Order{}
	}

	return orders
}

// Save overwrites the named store with orders. The file is written next to the
// target under a unique name and renamed into place.
func (s *Store) Save(ctx context.Context, name string, orders []*order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(orders)
	if err != nil {
		return fmt.Errorf("encode store %s: %w", name, err)
	}

	target := s.path(name)
	temp := fmt.Sprintf("%s.%s.tmp", target, uuid.NewString())
	if err = os.WriteFile(temp, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", name, err)
	}

	if err = os.Rename(temp, target); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace store %s: %w", name, err)
	}

	s.logger.Debugf("store %s saved with %d orders", name, len(orders))
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) read(name string) ([]*order.Order, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	if err = json.Unmarshal(data, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for i, dto := range dtos {
		o, orderErr := toDomain(dto)
		if orderErr != nil {
			s.logger.Warnf("store %s: skipping record %d (order id %q): %v", name, i+1, dto.OrderID, orderErr)
			continue
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func encode(orders []*order.Order) ([]byte, error) {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		dtos = append(dtos, fromDomain(o))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(dtos); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
