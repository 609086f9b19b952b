package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateKey reports a MySQL unique-constraint violation (1062).
func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
