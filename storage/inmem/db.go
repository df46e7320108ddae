package inmemdb

import (
	"sync"

	"github.com/trezcool/gradetrend/core/grade"
)

type (
	DB struct {
		account *accountTable
	}

	accountRow struct {
		account Account
		grades  []grade.RawGrade
	}

	accountTable struct {
		table map[string]*accountRow // {username: row}
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		account: &accountTable{table: make(map[string]*accountRow)},
	}
}
