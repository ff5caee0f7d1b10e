package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avoronova/craft-stash/internal/logger"
)

func newTestCatalogRepo(t *testing.T) (*catalogRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &catalogRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestFindByBarcode_Success(t *testing.T) {
	repo, mock, db := newTestCatalogRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"barcode", "name", "brand", "category", "unit", "default_quantity", "color"}).
		AddRow("0123456789", "DK Yarn", "Cascade", "Yarn", "skein", 1.0, "Blue")

	mock.ExpectQuery("SELECT barcode, name, brand").
		WithArgs("0123456789").
		WillReturnRows(rows)

	product, err := repo.FindByBarcode(context.Background(), "0123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "DK Yarn" {
		t.Errorf("unexpected name: %s", product.Name)
	}
	if product.DefaultQuantity != 1.0 {
		t.Errorf("unexpected default quantity: %f", product.DefaultQuantity)
	}
}

func TestFindByBarcode_NotFound(t *testing.T) {
	repo, mock, db := newTestCatalogRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT barcode, name, brand").
		WithArgs("999").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByBarcode(context.Background(), "999")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
