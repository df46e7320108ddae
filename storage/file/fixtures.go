package filedb

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/gradetrend/core/grade"
	inmemdb "github.com/trezcool/gradetrend/storage/inmem"
)

type (
	fixtures struct {
		Accounts []accountFixture `yaml:"accounts"`
	}

	accountFixture struct {
		Username     string           `yaml:"username"`
		Name         string           `yaml:"name"`
		Password     string           `yaml:"password"`      // plain text; hashed on load
		PasswordHash string           `yaml:"password_hash"` // bcrypt; wins over password
		Grades       []grade.RawGrade `yaml:"grades"`
	}
)

// Load seeds repo with the accounts & grades of the YAML file at path.
func Load(path string, repo *inmemdb.GradeRepository) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening fixtures")
	}
	defer func() { _ = f.Close() }()
	return Seed(f, repo)
}

// Seed seeds repo with the accounts & grades YAML-encoded in r.
func Seed(r io.Reader, repo *inmemdb.GradeRepository) error {
	var fx fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding fixtures")
	}

	for i, afx := range fx.Accounts {
		acc := inmemdb.Account{Username: afx.Username, Name: afx.Name}
		switch {
		case afx.PasswordHash != "":
			acc.PasswordHash = []byte(afx.PasswordHash)
		case afx.Password != "":
			if err := acc.SetPassword(afx.Password); err != nil {
				return errors.Wrapf(err, "accounts[%d]: hashing password", i)
			}
		default:
			return errors.Errorf("accounts[%d]: password is required", i)
		}

		acc, err := repo.CreateAccount(acc)
		if err != nil {
			return errors.Wrapf(err, "accounts[%d]: creating account", i)
		}
		if _, err = repo.AddGrades(acc.Username, afx.Grades...); err != nil {
			return errors.Wrapf(err, "accounts[%d]: adding grades", i)
		}
	}
	return nil
}
