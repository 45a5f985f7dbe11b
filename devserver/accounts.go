// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package devserver

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"sigs.k8s.io/yaml"

	"github.com/thomasg208/thomasai-resume/config"
	"github.com/thomasg208/thomasai-resume/utils"
)

var accountNamespace = uuid.MustParse("3f1c2b8e-5a7d-4b4e-9c1f-7e2d9a6b0c51")

// AccountSpec is one entry of the accounts file.
type AccountSpec struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

type accountsFile struct {
	Accounts []AccountSpec `json:"accounts"`
}

// Account is a login identity known to the dev server.
type Account struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`

	passwordHash []byte
}

// AccountStore holds accounts keyed by lower-cased email.
type AccountStore struct {
	byEmail map[string]*Account
	// dummyHash keeps unknown-email logins as slow as wrong-password ones.
	dummyHash []byte
}

// LoadAccountSpecs reads a YAML accounts file.
func LoadAccountSpecs(path string) ([]AccountSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}
	var file accountsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file %s: %w", path, err)
	}
	if len(file.Accounts) == 0 {
		return nil, fmt.Errorf("%w: accounts file %s defines no accounts", utils.ErrInvalidInput, path)
	}
	return file.Accounts, nil
}

// AccountSpecsFromConfig returns the accounts file entries, or the demo account when no file is set.
func AccountSpecsFromConfig(cfg *config.DevServerConfig) ([]AccountSpec, error) {
	if cfg.UsersFile != "" {
		return LoadAccountSpecs(cfg.UsersFile)
	}
	return []AccountSpec{{Email: cfg.DemoEmail, Name: cfg.DemoName, Password: cfg.DemoPassword}}, nil
}

// NewAccountStore hashes the given passwords with the bcrypt cost.
func NewAccountStore(specs []AccountSpec, cost int) (*AccountStore, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}
	store := &AccountStore{byEmail: make(map[string]*Account, len(specs)), dummyHash: dummy}
	for i, spec := range specs {
		email := normalizeEmail(spec.Email)
		if email == "" || !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: account %d has an invalid email %q", utils.ErrInvalidInput, i, spec.Email)
		}
		if spec.Password == "" {
			return nil, fmt.Errorf("%w: account %s has no password", utils.ErrInvalidInput, email)
		}
		if _, exists := store.byEmail[email]; exists {
			return nil, fmt.Errorf("%w: duplicate account %s", utils.ErrInvalidInput, email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(spec.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", email, err)
		}
		store.byEmail[email] = &Account{
			ID:           uuid.NewSHA1(accountNamespace, []byte(email)),
			Email:        email,
			Name:         spec.Name,
			passwordHash: hash,
		}
	}
	return store, nil
}

// Authenticate returns the account for email when password matches.
func (s *AccountStore) Authenticate(email, password string) (*Account, error) {
	account, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, utils.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	return account, nil
}

// Lookup returns the account for email.
func (s *AccountStore) Lookup(email string) (*Account, bool) {
	account, ok := s.byEmail[normalizeEmail(email)]
	return account, ok
}

// Len returns the number of accounts.
func (s *AccountStore) Len() int {
	return len(s.byEmail)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
