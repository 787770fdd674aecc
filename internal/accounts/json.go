package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cleared-dev/seedgen/internal/model"
)

// ErrLoad marks a reference data load failure: the file is missing,
// unreadable, or does not hold a JSON array of accounts.
var ErrLoad = errors.New("loading reference data")

// ReadAccounts decodes a JSON array of account objects.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	dec := json.NewDecoder(r)

	var accounts []model.Account
	if err := dec.Decode(&accounts); err != nil {
		return nil, fmt.Errorf("%w: decoding accounts JSON: %w", ErrLoad, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after accounts array", ErrLoad)
	}
	if accounts == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of accounts", ErrLoad)
	}

	for i, acct := range accounts {
		if acct.ID == "" {
			return nil, fmt.Errorf("%w: account %d: missing id", ErrLoad, i)
		}
		if acct.Type == "" {
			return nil, fmt.Errorf("%w: account %d (%s): missing type", ErrLoad, i, acct.ID)
		}
	}
	return accounts, nil
}

// WriteAccounts encodes accounts as an indented JSON array.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	if accounts == nil {
		accounts = []model.Account{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		return fmt.Errorf("encoding accounts JSON: %w", err)
	}
	return nil
}
