package mocks

import (
	"context"

	"hotelpos/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct{}

// WithinTx runs fn with a nil transaction; repositories under test are mocks and never touch it.
func (t *transactorImpl) WithinTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
