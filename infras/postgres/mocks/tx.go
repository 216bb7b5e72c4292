package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
)

type txRunnerImpl struct {
}

// WithTx implements postgres.TxRunner by invoking the function with a nil
// transaction handle; repository mocks accept any transaction argument.
func (t *txRunnerImpl) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return &txRunnerImpl{}
}
