package inmemdb

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/gradetrend/core"
	"github.com/trezcool/gradetrend/core/grade"
)

var (
	// errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("an account with this username already exists")
)

// Account is a student's account on the grade portal.
type Account struct {
	Username     string
	Name         string
	PasswordHash []byte
}

func (acc *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acc.PasswordHash = hash
	return nil
}

func (acc *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(pwd))
}

// GradeRepository is an in-memory grade portal.
type GradeRepository struct {
	db *accountTable
}

var _ grade.Source = (*GradeRepository)(nil)

func NewGradeRepository(db *DB) *GradeRepository {
	return &GradeRepository{db: db.account}
}

func (repo *GradeRepository) CreateAccount(acc Account) (Account, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	acc.Username = core.CleanString(acc.Username, true /* lower */)
	if _, ok := repo.db.table[acc.Username]; ok {
		return Account{}, ErrAccountExists
	}
	repo.db.table[acc.Username] = &accountRow{account: acc}
	return acc, nil
}

func (repo *GradeRepository) GetAccount(username string) (Account, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if row, ok := repo.db.table[core.CleanString(username, true /* lower */)]; ok {
		return row.account, nil
	}
	return Account{}, ErrAccountNotFound
}

func (repo *GradeRepository) QueryAllAccounts() []Account {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	accounts := make([]Account, 0, len(repo.db.table))
	for _, row := range repo.db.table {
		accounts = append(accounts, row.account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Username < accounts[j].Username })
	return accounts
}

// AddGrades appends grades to the account's grade book. Grades without an ID get a new one.
func (repo *GradeRepository) AddGrades(username string, raws ...grade.RawGrade) ([]grade.RawGrade, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	row, ok := repo.db.table[core.CleanString(username, true /* lower */)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	added := make([]grade.RawGrade, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" {
			raw.ID = uuid.New().String()
		}
		added = append(added, raw)
	}
	row.grades = append(row.grades, added...)
	return added, nil
}

func (repo *GradeRepository) DeleteAccountsByUsername(usernames ...string) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, uname := range usernames {
		delete(repo.db.table, core.CleanString(uname, true /* lower */))
	}
}

// Grades returns a copy of the account's grade book, once creds are checked.
func (repo *GradeRepository) Grades(ctx context.Context, creds grade.Credentials) ([]grade.RawGrade, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	row, ok := repo.db.table[core.CleanString(creds.Username, true /* lower */)]
	if !ok || row.account.CheckPassword(creds.Password) != nil {
		return nil, grade.ErrInvalidCredentials
	}
	raws := make([]grade.RawGrade, len(row.grades))
	copy(raws, row.grades)
	return raws, nil
}
