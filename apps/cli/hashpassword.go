package main

import (
	"fmt"

	inmemdb "github.com/trezcool/gradetrend/storage/inmem"
)

func (cli *commandLine) hashPassword(pwd string) error {
	var acc inmemdb.Account
	if err := acc.SetPassword(pwd); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, string(acc.PasswordHash))
	return nil
}
